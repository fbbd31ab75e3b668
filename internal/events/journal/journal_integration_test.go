//go:build integration

package journal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecargo/pkg/testutil/containers"
)

func TestPostgresJournal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	pg := containers.NewPostgresContainer(t)

	j, err := NewPostgres(ctx, pg.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer j.Close()

	j.Record(ctx, "V-1", "KOMGO.Trade.TradeData", OutcomeProcessed, "")
	j.Record(ctx, "V-1", "KOMGO.Trade.TradeData", OutcomeRequeued, "attempt 1")
	j.Record(ctx, "V-2", "KOMGO.Trade.CargoData", OutcomeDropped, "missing vaktId")

	var total int
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inbound_events WHERE vakt_id = $1`, "V-1").Scan(&total))
	assert.Equal(t, 2, total)

	var outcome, detail string
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT outcome, detail FROM inbound_events WHERE vakt_id = $1`, "V-2").
		Scan(&outcome, &detail))
	assert.Equal(t, OutcomeDropped, outcome)
	assert.Equal(t, "missing vaktId", detail)
}

// Package journal records the outcome of every inbound message in Postgres.
// The journal is an audit trail for support: when VAKT disputes a missed
// event, the row says what arrived and what happened to it.
package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Outcomes recorded per inbound message.
const (
	OutcomeProcessed = "processed"
	OutcomeDropped   = "dropped"
	OutcomeFailed    = "failed"
	OutcomeRequeued  = "requeued"
)

//go:generate mockgen -source=journal.go -destination=mock/journal_mock.go -package=mock

// Journal records inbound message outcomes.
type Journal interface {
	Record(ctx context.Context, vaktID, messageType, outcome, detail string)
}

// Postgres writes journal rows through a pgx pool. Failures are logged and
// swallowed: the journal must never block message processing.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgres(ctx context.Context, databaseURL string, logger *slog.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create journal pool: %w", err)
	}
	return &Postgres{pool: pool, logger: logger}, nil
}

func (j *Postgres) Record(ctx context.Context, vaktID, messageType, outcome, detail string) {
	_, err := j.pool.Exec(ctx, `
		INSERT INTO inbound_events (vakt_id, message_type, outcome, detail)
		VALUES ($1, $2, $3, $4)`,
		vaktID, messageType, outcome, detail,
	)
	if err != nil {
		j.logger.WarnContext(ctx, "journal write failed", "vaktId", vaktID, "error", err)
	}
}

func (j *Postgres) Close() {
	j.pool.Close()
}

// Nop is the journal used when no database is configured.
type Nop struct{}

func (Nop) Record(context.Context, string, string, string, string) {}

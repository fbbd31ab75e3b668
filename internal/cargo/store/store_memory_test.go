package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecargo/internal/domain"
	"tradecargo/pkg/platform/sentinel"
)

func newCargo(sourceID, cargoID string) domain.Cargo {
	return domain.NewCargo(domain.SourceVakt, sourceID, domain.CargoAttributes{CargoID: cargoID})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("natural key spans source, sourceId and cargoId", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Create(ctx, newCargo("V-1", "F0401"))
		require.NoError(t, err)

		_, err = store.Create(ctx, newCargo("V-1", "F0401"))
		assert.ErrorIs(t, err, sentinel.ErrConflict)

		// Same trade, different cargo is fine.
		_, err = store.Create(ctx, newCargo("V-1", "F0402"))
		assert.NoError(t, err)
	})

	t.Run("get and delete are scoped by source", func(t *testing.T) {
		store := NewMemoryStore()
		id, err := store.Create(ctx, newCargo("V-1", "F0401"))
		require.NoError(t, err)

		_, err = store.Get(ctx, id, domain.SourceKomgo)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)

		got, err := store.Get(ctx, id, domain.SourceVakt)
		require.NoError(t, err)
		assert.Equal(t, "F0401", got.CargoID)

		assert.ErrorIs(t, store.Delete(ctx, id, domain.SourceKomgo), sentinel.ErrNotFound)
		assert.NoError(t, store.Delete(ctx, id, domain.SourceVakt))
	})

	t.Run("findOne matches the full query", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Create(ctx, newCargo("V-1", "F0401"))
		require.NoError(t, err)
		_, err = store.Create(ctx, newCargo("V-1", "B0100"))
		require.NoError(t, err)

		got, err := store.FindOne(ctx, Query{
			Source:   domain.SourceVakt,
			SourceID: "V-1",
			CargoID:  "B0100",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.GradeBrent, got.Grade)

		_, err = store.FindOne(ctx, Query{SourceID: "V-2"})
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("find lists movements for one trade", func(t *testing.T) {
		store := NewMemoryStore()
		for _, cargoID := range []string{"F0401", "F0402"} {
			_, err := store.Create(ctx, newCargo("V-1", cargoID))
			require.NoError(t, err)
		}
		_, err := store.Create(ctx, newCargo("V-2", "F0500"))
		require.NoError(t, err)

		matched, err := store.Find(ctx, Query{SourceID: "V-1"}, Options{})
		require.NoError(t, err)
		assert.Len(t, matched, 2)
	})
}

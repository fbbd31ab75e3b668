package members

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecargo/pkg/platform/circuit"
	"tradecargo/pkg/platform/sentinel"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestFindByVaktID(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves and caches a single match", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, "vakt-1", r.URL.Query().Get("vaktStaticId"))
			json.NewEncoder(w).Encode([]Member{{StaticID: "company-1", VaktStaticID: "vakt-1"}})
		}))
		defer server.Close()

		client := New(server.URL, newMemoryCache(), testLogger())

		member, err := client.FindByVaktID(ctx, "vakt-1")
		require.NoError(t, err)
		assert.Equal(t, "company-1", member.StaticID)

		// Second lookup is served from the cache.
		member, err = client.FindByVaktID(ctx, "vakt-1")
		require.NoError(t, err)
		assert.Equal(t, "company-1", member.StaticID)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero matches is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode([]Member{})
		}))
		defer server.Close()

		_, err := New(server.URL, nil, testLogger()).FindByVaktID(ctx, "ghost")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("multiple matches is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode([]Member{{StaticID: "a"}, {StaticID: "b"}})
		}))
		defer server.Close()

		_, err := New(server.URL, nil, testLogger()).FindByVaktID(ctx, "dup")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("repeated failures open the circuit", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := New(server.URL, nil, testLogger())
		for i := 0; i < 5; i++ {
			_, err := client.FindByVaktID(ctx, "vakt-1")
			require.Error(t, err)
		}
		require.Equal(t, 5, calls)

		// The breaker now short-circuits without touching the registry.
		_, err := client.FindByVaktID(ctx, "vakt-1")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
		assert.Equal(t, 5, calls)
	})

	t.Run("the circuit recovers after its cooldown", func(t *testing.T) {
		var healthy bool
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			if !healthy {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode([]Member{{StaticID: "company-1", VaktStaticID: "vakt-1"}})
		}))
		defer server.Close()

		now := time.Unix(1000, 0)
		client := New(server.URL, nil, testLogger())
		client.breaker = circuit.New("members",
			circuit.WithCooldown(30*time.Second),
			circuit.WithClock(func() time.Time { return now }))

		for i := 0; i < 5; i++ {
			_, err := client.FindByVaktID(ctx, "vakt-1")
			require.Error(t, err)
		}
		_, err := client.FindByVaktID(ctx, "vakt-1")
		require.ErrorIs(t, err, sentinel.ErrUnavailable)
		require.Equal(t, 5, calls)

		// The registry comes back; once the cooldown elapses a trial call
		// goes through and lookups work again.
		healthy = true
		now = now.Add(time.Minute)
		member, err := client.FindByVaktID(ctx, "vakt-1")
		require.NoError(t, err)
		assert.Equal(t, "company-1", member.StaticID)
		assert.Equal(t, 6, calls)
	})

	t.Run("cached entries survive a registry outage", func(t *testing.T) {
		var healthy = true
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if !healthy {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode([]Member{{StaticID: "company-1", VaktStaticID: "vakt-1"}})
		}))
		defer server.Close()

		client := New(server.URL, newMemoryCache(), testLogger())
		_, err := client.FindByVaktID(ctx, "vakt-1")
		require.NoError(t, err)

		healthy = false
		member, err := client.FindByVaktID(ctx, "vakt-1")
		require.NoError(t, err)
		assert.Equal(t, "company-1", member.StaticID)
	})
}

package members

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"tradecargo/internal/clients/httpx"
	"tradecargo/pkg/platform/circuit"
	"tradecargo/pkg/platform/sentinel"
)

// Member is a platform participant as exposed by the registry service.
type Member struct {
	StaticID     string `json:"staticId"`
	VaktStaticID string `json:"vaktStaticId"`
	CommonName   string `json:"x500Name,omitempty"`
}

// Cache holds resolved members keyed by VAKT static ID. Backed by redis in
// production; nil-able, lookups degrade to the registry call.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// CacheTTL bounds how stale a directory entry may get. Member registrations
// change rarely; an hour keeps the registry load negligible.
const CacheTTL = time.Hour

// Client resolves external VAKT identifiers to internal static IDs against
// the member registry, with a read-through cache and a circuit breaker so a
// registry outage doesn't stall the whole inbound queue.
type Client struct {
	baseURL string
	http    *http.Client
	cache   Cache
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func New(baseURL string, cache Cache, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		breaker: circuit.New("members"),
		logger:  logger,
	}
}

// FindByVaktID returns the single member registered under the given VAKT
// static ID. Zero or multiple matches is a hard failure: trades must not be
// persisted against an ambiguous counterparty.
func (c *Client) FindByVaktID(ctx context.Context, vaktStaticID string) (Member, error) {
	cacheKey := "member:vakt:" + vaktStaticID
	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, cacheKey); ok {
			var member Member
			if err := json.Unmarshal(cached, &member); err == nil {
				return member, nil
			}
		}
	}

	// While open, lookups fail fast. After the breaker's cooldown, trial
	// calls reach the registry again and a run of successes closes it.
	if c.breaker.IsOpen() {
		return Member{}, fmt.Errorf("%w: member registry circuit open", sentinel.ErrUnavailable)
	}

	query := url.Values{"vaktStaticId": {vaktStaticID}}
	var matches []Member
	err := httpx.GetJSON(ctx, c.http, c.baseURL+"/v0/members?"+query.Encode(), &matches)
	if err != nil {
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.logger.WarnContext(ctx, "member registry circuit opened", "error", err)
		}
		return Member{}, fmt.Errorf("member lookup for %q: %w", vaktStaticID, err)
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "member registry circuit closed")
	}

	if len(matches) != 1 {
		return Member{}, fmt.Errorf("%w: counterparty %q", sentinel.ErrNotFound, vaktStaticID)
	}

	member := matches[0]
	if c.cache != nil {
		if encoded, err := json.Marshal(member); err == nil {
			c.cache.Set(ctx, cacheKey, encoded, CacheTTL)
		}
	}
	return member, nil
}

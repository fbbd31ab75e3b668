package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tradecargo/internal/domain"
	"tradecargo/pkg/platform/sentinel"
)

// MemoryStore keeps trades in memory. It mirrors the postgres store's
// constraint behavior (unique natural key over non-deleted rows) so services
// behave the same against either implementation.
type MemoryStore struct {
	mu     sync.RWMutex
	trades map[string]domain.Trade
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trades: make(map[string]domain.Trade)}
}

func (s *MemoryStore) Create(_ context.Context, trade domain.Trade) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.trades {
		if existing.DeletedAt == nil &&
			existing.Source == trade.Source && existing.SourceID == trade.SourceID {
			return "", sentinel.ErrConflict
		}
	}
	trade.ID = uuid.NewString()
	now := time.Now()
	trade.CreatedAt = now
	trade.UpdatedAt = now
	s.trades[trade.ID] = trade
	return trade.ID, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, trade domain.Trade) (domain.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.trades[id]
	if !ok || existing.DeletedAt != nil {
		return domain.Trade{}, sentinel.ErrNotFound
	}
	trade.ID = existing.ID
	trade.CreatedAt = existing.CreatedAt
	trade.UpdatedAt = time.Now()
	s.trades[id] = trade
	return trade, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trade, ok := s.trades[id]
	if !ok || trade.DeletedAt != nil {
		return domain.Trade{}, sentinel.ErrNotFound
	}
	return trade, nil
}

func (s *MemoryStore) FindOne(_ context.Context, sourceID string, source domain.Source) (domain.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, trade := range s.trades {
		if trade.DeletedAt == nil && trade.SourceID == sourceID && trade.Source == source {
			return trade, nil
		}
	}
	return domain.Trade{}, sentinel.ErrNotFound
}

func (s *MemoryStore) Find(_ context.Context, query Query, opts Options) ([]domain.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []domain.Trade
	for _, trade := range s.trades {
		if matches(trade, query) {
			matched = append(matched, trade)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return paginate(matched, opts), nil
}

func (s *MemoryStore) Count(_ context.Context, query Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, trade := range s.trades {
		if matches(trade, query) {
			n++
		}
	}
	return n, nil
}

// Delete soft-deletes: the row survives for audit but leaves every lookup.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	trade, ok := s.trades[id]
	if !ok || trade.DeletedAt != nil {
		return sentinel.ErrNotFound
	}
	now := time.Now()
	trade.DeletedAt = &now
	s.trades[id] = trade
	return nil
}

func matches(trade domain.Trade, query Query) bool {
	if trade.DeletedAt != nil {
		return false
	}
	if query.Source != "" && trade.Source != query.Source {
		return false
	}
	if query.SourceID != "" && trade.SourceID != query.SourceID {
		return false
	}
	if query.BuyerEtrmID != "" && trade.BuyerEtrmID != query.BuyerEtrmID {
		return false
	}
	if query.SellerEtrmID != "" && trade.SellerEtrmID != query.SellerEtrmID {
		return false
	}
	return true
}

func paginate(trades []domain.Trade, opts Options) []domain.Trade {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if opts.Skip >= len(trades) {
		return nil
	}
	trades = trades[opts.Skip:]
	if len(trades) > limit {
		trades = trades[:limit]
	}
	return trades
}

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

// MemoryStore keeps cargo movements in memory, mirroring the postgres store's
// unique natural key (source, sourceId, cargoId) over non-deleted rows.
type MemoryStore struct {
	mu     sync.RWMutex
	cargos map[string]domain.Cargo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cargos: make(map[string]domain.Cargo)}
}

func (s *MemoryStore) Create(_ context.Context, cargo domain.Cargo) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.cargos {
		if existing.DeletedAt == nil && existing.Source == cargo.Source &&
			existing.SourceID == cargo.SourceID && existing.CargoID == cargo.CargoID {
			return "", sentinel.ErrConflict
		}
	}
	cargo.ID = uuid.NewString()
	now := time.Now()
	cargo.CreatedAt = now
	cargo.UpdatedAt = now
	s.cargos[cargo.ID] = cargo
	return cargo.ID, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, cargo domain.Cargo) (domain.Cargo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.cargos[id]
	if !ok || existing.DeletedAt != nil {
		return domain.Cargo{}, sentinel.ErrNotFound
	}
	cargo.ID = existing.ID
	cargo.CreatedAt = existing.CreatedAt
	cargo.UpdatedAt = time.Now()
	s.cargos[id] = cargo
	return cargo, nil
}

func (s *MemoryStore) Get(_ context.Context, id string, source domain.Source) (domain.Cargo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cargo, ok := s.cargos[id]
	if !ok || cargo.DeletedAt != nil || cargo.Source != source {
		return domain.Cargo{}, sentinel.ErrNotFound
	}
	return cargo, nil
}

func (s *MemoryStore) FindOne(_ context.Context, query Query) (domain.Cargo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cargo := range s.cargos {
		if matches(cargo, query) {
			return cargo, nil
		}
	}
	return domain.Cargo{}, sentinel.ErrNotFound
}

func (s *MemoryStore) Find(_ context.Context, query Query, opts Options) ([]domain.Cargo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []domain.Cargo
	for _, cargo := range s.cargos {
		if matches(cargo, query) {
			matched = append(matched, cargo)
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
	for _, cargo := range s.cargos {
		if matches(cargo, query) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string, source domain.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cargo, ok := s.cargos[id]
	if !ok || cargo.DeletedAt != nil || cargo.Source != source {
		return sentinel.ErrNotFound
	}
	now := time.Now()
	cargo.DeletedAt = &now
	s.cargos[id] = cargo
	return nil
}

func matches(cargo domain.Cargo, query Query) bool {
	if cargo.DeletedAt != nil {
		return false
	}
	if query.Source != "" && cargo.Source != query.Source {
		return false
	}
	if query.SourceID != "" && cargo.SourceID != query.SourceID {
		return false
	}
	if query.CargoID != "" && cargo.CargoID != query.CargoID {
		return false
	}
	return true
}

func paginate(cargos []domain.Cargo, opts Options) []domain.Cargo {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if opts.Skip >= len(cargos) {
		return nil
	}
	cargos = cargos[opts.Skip:]
	if len(cargos) > limit {
		cargos = cargos[:limit]
	}
	return cargos
}

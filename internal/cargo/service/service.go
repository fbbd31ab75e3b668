// Package service implements the cargo movement API business rules: schema
// validation, the trade-must-exist guard for REST creates and natural-key
// uniqueness.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tradecargo/internal/cargo/store"
	"tradecargo/internal/domain"
	dErrors "tradecargo/pkg/errors"
	"tradecargo/pkg/platform/sentinel"
)

// Store is the cargo persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, cargo domain.Cargo) (string, error)
	Update(ctx context.Context, id string, cargo domain.Cargo) (domain.Cargo, error)
	Get(ctx context.Context, id string, source domain.Source) (domain.Cargo, error)
	FindOne(ctx context.Context, query store.Query) (domain.Cargo, error)
	Find(ctx context.Context, query store.Query, opts store.Options) ([]domain.Cargo, error)
	Count(ctx context.Context, query store.Query) (int64, error)
	Delete(ctx context.Context, id string, source domain.Source) error
}

// TradeFinder checks that the owning trade exists before a movement is
// accepted over REST. Inbound VAKT movements skip this guard.
type TradeFinder interface {
	FindOne(ctx context.Context, sourceID string, source domain.Source) (domain.Trade, error)
}

// Validator checks a cargo's structure against its schema version.
type Validator interface {
	Validate(cargo domain.Cargo) []dErrors.FieldError
}

// EventPublisher emits the internal event after a movement is created or
// materially updated, keyed by the owning trade's sourceId.
type EventPublisher interface {
	PublishCargoUpdated(ctx context.Context, vaktID string, cargo domain.Cargo) error
}

type Service struct {
	store     Store
	trades    TradeFinder
	validator Validator
	publisher EventPublisher
	logger    *slog.Logger
}

func New(s Store, trades TradeFinder, v Validator, pub EventPublisher, logger *slog.Logger) *Service {
	return &Service{store: s, trades: trades, validator: v, publisher: pub, logger: logger}
}

// Create validates and persists a new cargo movement. The owning trade must
// already exist; the movement inherits its financing status.
func (s *Service) Create(ctx context.Context, source domain.Source, sourceID string, attrs domain.CargoAttributes) (domain.Cargo, error) {
	cargo := domain.NewCargo(source, sourceID, attrs)
	if err := s.validate(cargo); err != nil {
		return domain.Cargo{}, err
	}

	trade, err := s.trades.FindOne(ctx, sourceID, source)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domain.Cargo{}, dErrors.WithFields(dErrors.CodeBadRequest, "Cargo validation failed",
				map[string][]string{"trade": {"Trade for cargo does not exists"}})
		}
		return domain.Cargo{}, fmt.Errorf("check trade for cargo: %w", err)
	}
	cargo.Status = trade.Status

	id, err := s.store.Create(ctx, cargo)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return domain.Cargo{}, dErrors.New(dErrors.CodeConflict,
				fmt.Sprintf("Cargo with same ID already exists. Source: %s, Id: %s", source, attrs.CargoID))
		}
		return domain.Cargo{}, fmt.Errorf("create cargo: %w", err)
	}
	cargo.ID = id
	s.logger.InfoContext(ctx, "cargo created", "id", id, "source", source, "cargoId", cargo.CargoID)

	// A fresh movement always differs from the empty prior state.
	if err := s.publisher.PublishCargoUpdated(ctx, sourceID, cargo); err != nil {
		return domain.Cargo{}, err
	}
	return cargo, nil
}

// Update replaces a movement's attributes. Source and sourceId are immutable.
func (s *Service) Update(ctx context.Context, id string, source domain.Source, attrs domain.CargoAttributes) (domain.Cargo, error) {
	existing, err := s.Get(ctx, id, source)
	if err != nil {
		return domain.Cargo{}, err
	}
	incoming := domain.NewCargo(existing.Source, existing.SourceID, attrs)
	incoming.Status = existing.Status
	if err := s.validate(incoming); err != nil {
		return domain.Cargo{}, err
	}
	updated, err := s.store.Update(ctx, id, incoming)
	if err != nil {
		return domain.Cargo{}, fmt.Errorf("update cargo %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "cargo updated", "id", id)

	if domain.CargoChanged(existing, updated) {
		if err := s.publisher.PublishCargoUpdated(ctx, updated.SourceID, updated); err != nil {
			return domain.Cargo{}, err
		}
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id string, source domain.Source) (domain.Cargo, error) {
	cargo, err := s.store.Get(ctx, id, source)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domain.Cargo{}, dErrors.New(dErrors.CodeNotFound, "Cargo not found")
		}
		return domain.Cargo{}, fmt.Errorf("get cargo %s: %w", id, err)
	}
	return cargo, nil
}

func (s *Service) Find(ctx context.Context, query store.Query, opts store.Options) ([]domain.Cargo, int64, error) {
	cargos, err := s.store.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find cargos: %w", err)
	}
	total, err := s.store.Count(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count cargos: %w", err)
	}
	return cargos, total, nil
}

func (s *Service) Delete(ctx context.Context, id string, source domain.Source) error {
	if err := s.store.Delete(ctx, id, source); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Cargo not found")
		}
		return fmt.Errorf("delete cargo %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "cargo deleted", "id", id)
	return nil
}

func (s *Service) validate(cargo domain.Cargo) error {
	if fieldErrs := s.validator.Validate(cargo); len(fieldErrs) > 0 {
		return dErrors.WithErrors(dErrors.CodeBadRequest, "Invalid cargo", fieldErrs)
	}
	return nil
}

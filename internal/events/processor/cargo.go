package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"tradecargo/internal/cargo/store"
	"tradecargo/internal/clients/notification"
	"tradecargo/internal/domain"
	"tradecargo/internal/events"
	"tradecargo/internal/events/mapper"
	"tradecargo/internal/events/publisher"
	"tradecargo/internal/platform/metrics"
	"tradecargo/pkg/platform/sentinel"
)

//go:generate mockgen -source=cargo.go -destination=mock/cargo_mock.go -package=mock

// CargoStore is the subset of the cargo store the reconciliation path needs.
type CargoStore interface {
	Create(ctx context.Context, cargo domain.Cargo) (string, error)
	Update(ctx context.Context, id string, cargo domain.Cargo) (domain.Cargo, error)
	FindOne(ctx context.Context, query store.Query) (domain.Cargo, error)
}

// CargoProcessor reconciles CargoData messages against the cargo store. A
// cargo may arrive before its trade; that is logged, not rejected, since the
// trade message can still be in flight.
type CargoProcessor struct {
	store      CargoStore
	tradeStore TradeStore
	notifier   Notifier
	publisher  publisher.EventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCargoProcessor(
	cargoStore CargoStore,
	tradeStore TradeStore,
	notifier Notifier,
	pub publisher.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CargoProcessor {
	return &CargoProcessor{
		store:      cargoStore,
		tradeStore: tradeStore,
		notifier:   notifier,
		publisher:  pub,
		metrics:    m,
		logger:     logger,
	}
}

func (p *CargoProcessor) Process(ctx context.Context, env events.Envelope) error {
	var msg events.CargoMessageData
	if err := json.Unmarshal(env.Payload, &msg); err != nil {
		return fmt.Errorf("decode cargo message: %w", err)
	}

	attrs, err := mapper.CargoAttributes(msg)
	if err != nil {
		return fmt.Errorf("map cargo %s: %w", env.VaktID, err)
	}
	incoming := domain.NewCargo(domain.SourceVakt, env.VaktID, attrs)

	existing, err := p.store.FindOne(ctx, store.Query{
		Source:   domain.SourceVakt,
		SourceID: env.VaktID,
		CargoID:  msg.CargoID,
	})
	switch {
	case err == nil:
		return p.update(ctx, env.VaktID, existing, incoming)
	case errors.Is(err, sentinel.ErrNotFound):
		return p.create(ctx, env.VaktID, incoming)
	default:
		return fmt.Errorf("lookup cargo %s/%s: %w", env.VaktID, msg.CargoID, err)
	}
}

func (p *CargoProcessor) create(ctx context.Context, vaktID string, cargo domain.Cargo) error {
	// The movement inherits the financing status of its trade. Without one
	// (the trade message may still be in flight) the purchase default stands.
	message := fmt.Sprintf("New cargo movement %s", cargo.CargoID)
	if trade, err := p.tradeStore.FindOne(ctx, vaktID, domain.SourceVakt); err == nil {
		cargo.Status = trade.Status
		message = fmt.Sprintf("New cargo movement %s for trade %s", cargo.CargoID, trade.BuyerEtrmID)
	} else {
		p.logger.WarnContext(ctx, "cargo arrived before its trade", "vaktId", vaktID, "cargoId", cargo.CargoID)
	}

	id, err := p.store.Create(ctx, cargo)
	if err != nil {
		return fmt.Errorf("create cargo %s: %w", vaktID, err)
	}
	cargo.ID = id
	p.logger.InfoContext(ctx, "cargo created from inbound message",
		"vaktId", vaktID, "cargoId", cargo.CargoID, "id", id)

	p.notify(ctx, vaktID, cargo.CargoID, message)
	return nil
}

func (p *CargoProcessor) update(ctx context.Context, vaktID string, existing, incoming domain.Cargo) error {
	incoming.Status = existing.Status
	updated, err := p.store.Update(ctx, existing.ID, incoming)
	if err != nil {
		return fmt.Errorf("update cargo %s: %w", vaktID, err)
	}
	p.logger.InfoContext(ctx, "cargo updated from inbound message",
		"vaktId", vaktID, "cargoId", updated.CargoID, "id", updated.ID)

	if err := p.publisher.PublishCargoUpdated(ctx, vaktID, updated); err != nil {
		return err
	}
	p.notify(ctx, vaktID, updated.CargoID, fmt.Sprintf("Updated cargo movement %s", updated.CargoID))
	return nil
}

func (p *CargoProcessor) notify(ctx context.Context, vaktID, cargoID, message string) {
	err := p.notifier.CreateNotification(ctx, notification.Notification{
		ProductID: notification.ProductTradeFinance,
		Type:      notification.TypeTradeCargoInfo,
		Level:     notification.LevelInfo,
		RequiredPermission: notification.Permission{
			ProductID: notification.ProductTradeFinance,
			ActionID:  notification.ActionManageTrades,
		},
		Context: map[string]any{"vaktId": vaktID, "cargoId": cargoID},
		Message: message,
	})
	if err != nil {
		p.metrics.NotificationsSent.WithLabelValues("error").Inc()
		p.logger.WarnContext(ctx, "notification failed", "vaktId", vaktID, "error", err)
		return
	}
	p.metrics.NotificationsSent.WithLabelValues("ok").Inc()
}

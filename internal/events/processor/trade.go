// Package processor reconciles inbound VAKT payloads against the canonical
// stores. Each processor handles exactly one message type; the consumer owns
// dispatch, acknowledgement and retries.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"tradecargo/internal/clients/members"
	"tradecargo/internal/clients/notification"
	"tradecargo/internal/domain"
	"tradecargo/internal/events"
	"tradecargo/internal/events/mapper"
	"tradecargo/internal/events/publisher"
	"tradecargo/internal/platform/metrics"
	"tradecargo/pkg/platform/sentinel"
)

//go:generate mockgen -source=trade.go -destination=mock/trade_mock.go -package=mock

// TradeStore is the subset of the trade store the reconciliation path needs.
type TradeStore interface {
	Create(ctx context.Context, trade domain.Trade) (string, error)
	Update(ctx context.Context, id string, trade domain.Trade) (domain.Trade, error)
	FindOne(ctx context.Context, sourceID string, source domain.Source) (domain.Trade, error)
}

// MemberDirectory resolves VAKT static IDs to platform members.
type MemberDirectory interface {
	FindByVaktID(ctx context.Context, vaktStaticID string) (members.Member, error)
}

// CounterpartyAdder registers companies as counterparties.
type CounterpartyAdder interface {
	AutoAdd(ctx context.Context, companyIDs []string) error
}

// Notifier delivers user-facing notifications.
type Notifier interface {
	CreateNotification(ctx context.Context, n notification.Notification) error
}

// TradeProcessor reconciles TradeData messages: resolve counterparties,
// then create or overwrite the stored trade and emit the internal event.
// Updates are persisted and published without comparing against the stored
// row; the upstream source only sends a message when its value changed.
type TradeProcessor struct {
	store           TradeStore
	directory       MemberDirectory
	counterparties  CounterpartyAdder
	notifier        Notifier
	publisher       publisher.EventPublisher
	metrics         *metrics.Metrics
	companyStaticID string
	logger          *slog.Logger
}

func NewTradeProcessor(
	store TradeStore,
	directory MemberDirectory,
	counterparties CounterpartyAdder,
	notifier Notifier,
	pub publisher.EventPublisher,
	m *metrics.Metrics,
	companyStaticID string,
	logger *slog.Logger,
) *TradeProcessor {
	return &TradeProcessor{
		store:           store,
		directory:       directory,
		counterparties:  counterparties,
		notifier:        notifier,
		publisher:       pub,
		metrics:         m,
		companyStaticID: companyStaticID,
		logger:          logger,
	}
}

func (p *TradeProcessor) Process(ctx context.Context, env events.Envelope) error {
	var msg events.TradeMessageData
	if err := json.Unmarshal(env.Payload, &msg); err != nil {
		return fmt.Errorf("decode trade message: %w", err)
	}

	buyer, err := p.directory.FindByVaktID(ctx, msg.Buyer)
	if err != nil {
		return fmt.Errorf("resolve buyer: %w", err)
	}
	seller, err := p.directory.FindByVaktID(ctx, msg.Seller)
	if err != nil {
		return fmt.Errorf("resolve seller: %w", err)
	}

	attrs, err := mapper.TradeAttributes(msg)
	if err != nil {
		return fmt.Errorf("map trade %s: %w", env.VaktID, err)
	}
	attrs.Buyer = buyer.StaticID
	attrs.Seller = seller.StaticID
	incoming := domain.NewTrade(domain.SourceVakt, env.VaktID, p.companyStaticID, attrs)

	existing, err := p.store.FindOne(ctx, env.VaktID, domain.SourceVakt)
	switch {
	case err == nil:
		return p.update(ctx, env.VaktID, existing, incoming)
	case errors.Is(err, sentinel.ErrNotFound):
		return p.create(ctx, env.VaktID, incoming)
	default:
		return fmt.Errorf("lookup trade %s: %w", env.VaktID, err)
	}
}

func (p *TradeProcessor) create(ctx context.Context, vaktID string, trade domain.Trade) error {
	id, err := p.store.Create(ctx, trade)
	if err != nil {
		return fmt.Errorf("create trade %s: %w", vaktID, err)
	}
	trade.ID = id
	p.logger.InfoContext(ctx, "trade created from inbound message", "vaktId", vaktID, "id", id)

	p.autoAddCounterparties(ctx, trade)
	p.notify(ctx, vaktID, fmt.Sprintf("New trade %s", p.roleEtrmID(trade)))
	return nil
}

func (p *TradeProcessor) update(ctx context.Context, vaktID string, existing, incoming domain.Trade) error {
	updated, err := p.store.Update(ctx, existing.ID, incoming)
	if err != nil {
		return fmt.Errorf("update trade %s: %w", vaktID, err)
	}
	p.logger.InfoContext(ctx, "trade updated from inbound message", "vaktId", vaktID, "id", updated.ID)

	if err := p.publisher.PublishTradeUpdated(ctx, vaktID, updated); err != nil {
		return err
	}
	p.notify(ctx, vaktID, fmt.Sprintf("Updated trade %s", p.roleEtrmID(updated)))
	return nil
}

// autoAddCounterparties registers the other party so documents can flow
// without a manual connection step. Best effort.
func (p *TradeProcessor) autoAddCounterparties(ctx context.Context, trade domain.Trade) {
	var ids []string
	for _, id := range []string{trade.Buyer, trade.Seller} {
		if id != "" && id != p.companyStaticID {
			ids = append(ids, id)
		}
	}
	if err := p.counterparties.AutoAdd(ctx, ids); err != nil {
		p.logger.WarnContext(ctx, "counterparty auto-add failed", "error", err)
	}
}

func (p *TradeProcessor) notify(ctx context.Context, vaktID, message string) {
	err := p.notifier.CreateNotification(ctx, notification.Notification{
		ProductID: notification.ProductTradeFinance,
		Type:      notification.TypeTradeCargoInfo,
		Level:     notification.LevelInfo,
		RequiredPermission: notification.Permission{
			ProductID: notification.ProductTradeFinance,
			ActionID:  notification.ActionManageTrades,
		},
		Context: map[string]any{"vaktId": vaktID},
		Message: message,
	})
	if err != nil {
		p.metrics.NotificationsSent.WithLabelValues("error").Inc()
		p.logger.WarnContext(ctx, "notification failed", "vaktId", vaktID, "error", err)
		return
	}
	p.metrics.NotificationsSent.WithLabelValues("ok").Inc()
}

// roleEtrmID picks the ETRM reference matching the company's side of the
// trade for user-facing messages.
func (p *TradeProcessor) roleEtrmID(trade domain.Trade) string {
	if trade.SellerRole(p.companyStaticID) {
		return trade.SellerEtrmID
	}
	return trade.BuyerEtrmID
}

// Package service implements the trade API business rules on top of the
// store: structural validation, natural-key and ETRM uniqueness, edit guards
// and the letter-of-credit deletion guard.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	cargostore "tradecargo/internal/cargo/store"
	"tradecargo/internal/clients/tradefinance"
	"tradecargo/internal/domain"
	"tradecargo/internal/trade/store"
	dErrors "tradecargo/pkg/errors"
	"tradecargo/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

// Store is the trade persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, trade domain.Trade) (string, error)
	Update(ctx context.Context, id string, trade domain.Trade) (domain.Trade, error)
	Get(ctx context.Context, id string) (domain.Trade, error)
	FindOne(ctx context.Context, sourceID string, source domain.Source) (domain.Trade, error)
	Find(ctx context.Context, query store.Query, opts store.Options) ([]domain.Trade, error)
	Count(ctx context.Context, query store.Query) (int64, error)
	Delete(ctx context.Context, id string) error
}

// CargoFinder lists the cargo movements attached to a trade's natural key.
type CargoFinder interface {
	Find(ctx context.Context, query cargostore.Query, opts cargostore.Options) ([]domain.Cargo, error)
}

// Validator checks a trade's structure against its schema version.
type Validator interface {
	Validate(ctx context.Context, trade domain.Trade) ([]dErrors.FieldError, error)
}

// LCProvider looks up letters of credit for the deletion guard.
type LCProvider interface {
	GetLettersOfCredit(ctx context.Context, tradeID string) ([]tradefinance.LetterOfCredit, error)
}

// EventPublisher emits the internal event after a material update, keyed by
// the trade's sourceId.
type EventPublisher interface {
	PublishTradeUpdated(ctx context.Context, vaktID string, trade domain.Trade) error
}

type Service struct {
	store           Store
	cargos          CargoFinder
	validator       Validator
	lcs             LCProvider
	publisher       EventPublisher
	companyStaticID string
	logger          *slog.Logger
}

func New(s Store, cargos CargoFinder, v Validator, lcs LCProvider, pub EventPublisher, companyStaticID string, logger *slog.Logger) *Service {
	return &Service{
		store:           s,
		cargos:          cargos,
		validator:       v,
		lcs:             lcs,
		publisher:       pub,
		companyStaticID: companyStaticID,
		logger:          logger,
	}
}

// Create validates and persists a new trade. KOMGO trades get a generated
// source ID; VAKT trades arriving over REST must bring their own.
func (s *Service) Create(ctx context.Context, source domain.Source, sourceID string, attrs domain.TradeAttributes) (domain.Trade, error) {
	switch source {
	case domain.SourceKomgo:
		if sourceID == "" {
			sourceID = uuid.NewString()
		}
	case domain.SourceVakt:
		if sourceID == "" {
			return domain.Trade{}, dErrors.WithFields(dErrors.CodeBadRequest, "Trade validation failed",
				map[string][]string{"sourceId": {fmt.Sprintf("Required for source: %s", source)}})
		}
	default:
		return domain.Trade{}, dErrors.WithFields(dErrors.CodeBadRequest, "Trade validation failed",
			map[string][]string{"source": {fmt.Sprintf("Unknown source: %s", source)}})
	}
	trade := domain.NewTrade(source, sourceID, s.companyStaticID, attrs)

	if err := s.validate(ctx, trade); err != nil {
		return domain.Trade{}, err
	}
	if _, err := s.store.FindOne(ctx, sourceID, source); err == nil {
		return domain.Trade{}, duplicateTradeError(source, sourceID)
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return domain.Trade{}, fmt.Errorf("check duplicate trade: %w", err)
	}
	if err := s.checkEtrmCollision(ctx, trade, ""); err != nil {
		return domain.Trade{}, err
	}

	id, err := s.store.Create(ctx, trade)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return domain.Trade{}, duplicateTradeError(source, sourceID)
		}
		return domain.Trade{}, fmt.Errorf("create trade: %w", err)
	}
	trade.ID = id
	s.logger.InfoContext(ctx, "trade created", "id", id, "source", source, "sourceId", sourceID)
	return trade, nil
}

// Update replaces a trade's attributes. The natural key and counterparties
// are immutable; sale-side trades are only editable before discounting
// starts.
func (s *Service) Update(ctx context.Context, id string, source domain.Source, sourceID string, attrs domain.TradeAttributes) (domain.Trade, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domain.Trade{}, dErrors.New(dErrors.CodeNotFound, "Trade not found")
		}
		return domain.Trade{}, fmt.Errorf("get trade %s: %w", id, err)
	}

	if existing.SellerRole(s.companyStaticID) && existing.Status != domain.StatusToBeDiscounted {
		return domain.Trade{}, dErrors.WithFields(dErrors.CodeBadRequest, "Trade validation failed",
			map[string][]string{
				"status": {fmt.Sprintf("Can't edit trade in status: %s", existing.Status)},
			})
	}

	if err := s.checkProtectedFields(existing, source, sourceID, attrs); err != nil {
		return domain.Trade{}, err
	}

	incoming := domain.NewTrade(existing.Source, existing.SourceID, s.companyStaticID, attrs)
	if err := s.validate(ctx, incoming); err != nil {
		return domain.Trade{}, err
	}
	if s.roleEtrmID(incoming) != s.roleEtrmID(existing) {
		if err := s.checkEtrmCollision(ctx, incoming, id); err != nil {
			return domain.Trade{}, err
		}
	}

	updated, err := s.store.Update(ctx, id, incoming)
	if err != nil {
		return domain.Trade{}, fmt.Errorf("update trade %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "trade updated", "id", id)

	if domain.TradeChanged(existing, updated) {
		if err := s.publisher.PublishTradeUpdated(ctx, updated.SourceID, updated); err != nil {
			return domain.Trade{}, err
		}
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Trade, error) {
	trade, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return domain.Trade{}, dErrors.New(dErrors.CodeNotFound, "Trade not found")
		}
		return domain.Trade{}, fmt.Errorf("get trade %s: %w", id, err)
	}
	return trade, nil
}

func (s *Service) Find(ctx context.Context, query store.Query, opts store.Options) ([]domain.Trade, int64, error) {
	trades, err := s.store.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find trades: %w", err)
	}
	total, err := s.store.Count(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count trades: %w", err)
	}
	return trades, total, nil
}

// Movements lists the cargo movements sharing the trade's natural key.
func (s *Service) Movements(ctx context.Context, id string) ([]domain.Cargo, error) {
	trade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cargos, err := s.cargos.Find(ctx, cargostore.Query{
		Source:   trade.Source,
		SourceID: trade.SourceID,
	}, cargostore.Options{})
	if err != nil {
		return nil, fmt.Errorf("find movements for trade %s: %w", id, err)
	}
	return cargos, nil
}

// Delete soft-deletes a trade unless a live letter of credit references it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	lcs, err := s.lcs.GetLettersOfCredit(ctx, id)
	if err != nil {
		return fmt.Errorf("check letters of credit for trade %s: %w", id, err)
	}
	if tradefinance.Active(lcs) {
		return dErrors.New(dErrors.CodeConflict,
			fmt.Sprintf("You can't remove trade %s, trade have a LC document", id))
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trade %s: %w", id, err)
	}
	s.logger.InfoContext(ctx, "trade deleted", "id", id)
	return nil
}

func (s *Service) validate(ctx context.Context, trade domain.Trade) error {
	fieldErrs, err := s.validator.Validate(ctx, trade)
	if err != nil {
		return fmt.Errorf("validate trade: %w", err)
	}
	if len(fieldErrs) > 0 {
		return dErrors.WithErrors(dErrors.CodeBadRequest, "Invalid trade", fieldErrs)
	}
	return nil
}

// checkProtectedFields rejects attempts to move a trade to a different
// natural key or counterparty pair through an update. On sale-side trades the
// financing terms are locked too. Clearing a protected field counts as a
// change.
func (s *Service) checkProtectedFields(existing domain.Trade, source domain.Source, sourceID string, attrs domain.TradeAttributes) error {
	fields := map[string][]string{}
	protect := func(name, current, next string) {
		if next != current {
			fields[name] = append(fields[name], fmt.Sprintf("Current: %s, new: %s", current, next))
		}
	}
	protect("source", string(existing.Source), string(source))
	protect("sourceId", existing.SourceID, sourceID)
	protect("buyer", existing.Buyer, attrs.Buyer)
	protect("seller", existing.Seller, attrs.Seller)
	if existing.SellerRole(s.companyStaticID) {
		// An absent credit requirement re-applies the constructor default,
		// so compare the defaulted value.
		credit := attrs.CreditRequirement
		if credit == "" {
			credit = domain.CreditDocumentaryLetterOfCredit
		}
		protect("creditRequirement", string(existing.CreditRequirement), string(credit))
		protect("commodity", existing.Commodity, attrs.Commodity)
	}
	if len(fields) > 0 {
		return dErrors.WithFields(dErrors.CodeBadRequest, "Trade validation failed", fields)
	}
	return nil
}

// checkEtrmCollision enforces company-wide uniqueness of the ETRM reference
// on the company's side of the trade.
func (s *Service) checkEtrmCollision(ctx context.Context, trade domain.Trade, excludeID string) error {
	etrmID := s.roleEtrmID(trade)
	if etrmID == "" {
		return nil
	}
	query := store.Query{BuyerEtrmID: etrmID}
	message := fmt.Sprintf("Trade with the same Buyer EtrmID already exists. EtrmId: %s", etrmID)
	if trade.SellerRole(s.companyStaticID) {
		query = store.Query{SellerEtrmID: etrmID}
		message = fmt.Sprintf("Trade with the same Seller EtrmID already exists. EtrmId: %s", etrmID)
	}
	matches, err := s.store.Find(ctx, query, store.Options{})
	if err != nil {
		return fmt.Errorf("check etrmId uniqueness: %w", err)
	}
	for _, match := range matches {
		if match.ID != excludeID {
			return dErrors.New(dErrors.CodeConflict, message)
		}
	}
	return nil
}

func (s *Service) roleEtrmID(trade domain.Trade) string {
	if trade.SellerRole(s.companyStaticID) {
		return trade.SellerEtrmID
	}
	return trade.BuyerEtrmID
}

func duplicateTradeError(source domain.Source, sourceID string) error {
	return dErrors.New(dErrors.CodeConflict,
		fmt.Sprintf("Trade with same ID already exists. Source: %s, Id: %s", source, sourceID))
}

package validator

import (
	"context"
	"fmt"
	"strings"

	"tradecargo/internal/domain"
	dErrors "tradecargo/pkg/errors"
)

//go:generate mockgen -source=validator.go -destination=mock/validator_mock.go -package=mock

// DocumentCatalog resolves the set of known trade document type names for a
// product/category pair. Implemented by the documents service client.
type DocumentCatalog interface {
	GetDocumentTypes(ctx context.Context, product, category string) ([]string, error)
}

const (
	productTradeFinance  = "tradeFinance"
	categoryTradeFinance = "trade-finance-documents"
)

// Validator performs structural validation of a trade. Validation rules are
// gated by the entity's schema version; business-rule checks that need store
// state live in the trade service, not here.
type Validator struct {
	companyStaticID string
	documents       DocumentCatalog
}

// New builds a trade validator. The owning company's static ID is injected
// explicitly so trading-role rules don't reach into the environment.
func New(companyStaticID string, documents DocumentCatalog) *Validator {
	return &Validator{companyStaticID: companyStaticID, documents: documents}
}

// Validate returns nil when the trade is structurally valid, otherwise the
// ordered list of field errors: schema errors first, then the tolerance
// check, then the required-documents check.
func (v *Validator) Validate(ctx context.Context, trade domain.Trade) ([]dErrors.FieldError, error) {
	schema, ok := schemaForVersion(trade.Version)
	if !ok {
		return []dErrors.FieldError{{
			DataPath:   ".version",
			Keyword:    "enum",
			Message:    fmt.Sprintf("unsupported schema version: %d", trade.Version),
			Params:     map[string]any{"allowedValues": []int{1, 2}},
			SchemaPath: "#/properties/version/enum",
		}}, nil
	}

	errs := schema(trade, v.companyStaticID)

	if trade.MinTolerance > trade.MaxTolerance {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".minTolerance",
			Keyword:    "maximum",
			Message:    "minTolerance must be less than or equal to maxTolerance",
			Params:     map[string]any{"comparison": "<=", "limit": trade.MaxTolerance},
			SchemaPath: "#/properties/minTolerance/maximum",
		})
	}

	if trade.SellerRole(v.companyStaticID) && len(trade.RequiredDocuments) > 0 {
		unmatched, err := v.unmatchedDocumentTypes(ctx, trade.RequiredDocuments)
		if err != nil {
			return nil, fmt.Errorf("check required documents: %w", err)
		}
		if len(unmatched) > 0 {
			errs = append(errs, dErrors.FieldError{
				DataPath:   ".requiredDocuments",
				Keyword:    "enum",
				Message:    "unknown document types: " + strings.Join(unmatched, ", "),
				Params:     map[string]any{"unmatched": unmatched},
				SchemaPath: "#/properties/requiredDocuments/items/enum",
			})
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

func (v *Validator) unmatchedDocumentTypes(ctx context.Context, requested []string) ([]string, error) {
	known, err := v.documents.GetDocumentTypes(ctx, productTradeFinance, categoryTradeFinance)
	if err != nil {
		return nil, err
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}
	var unmatched []string
	for _, name := range requested {
		if _, ok := knownSet[name]; !ok {
			unmatched = append(unmatched, name)
		}
	}
	return unmatched, nil
}

// schemaFunc validates one schema version of the trade shape.
type schemaFunc func(trade domain.Trade, companyStaticID string) []dErrors.FieldError

func schemaForVersion(version int) (schemaFunc, bool) {
	switch version {
	case 1:
		return validateV1, true
	case 2:
		return validateV2, true
	default:
		return nil, false
	}
}

// validateCore holds the checks shared by every schema version.
func validateCore(trade domain.Trade, companyStaticID string) []dErrors.FieldError {
	var errs []dErrors.FieldError

	requireString := func(path, value string) {
		if value == "" {
			errs = append(errs, dErrors.FieldError{
				DataPath:   "." + path,
				Keyword:    "required",
				Message:    fmt.Sprintf("should have required property '%s'", path),
				Params:     map[string]any{"missingProperty": path},
				SchemaPath: "#/required",
			})
		}
	}

	requireString("buyer", trade.Buyer)
	requireString("seller", trade.Seller)
	requireString("currency", trade.Currency)

	if trade.Buyer != "" && trade.Buyer == trade.Seller {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".seller",
			Keyword:    "const",
			Message:    "buyer and seller must be different companies",
			Params:     map[string]any{"buyer": trade.Buyer},
			SchemaPath: "#/properties/seller/not",
		})
	}

	if trade.DealDate == nil {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".dealDate",
			Keyword:    "required",
			Message:    "should have required property 'dealDate'",
			Params:     map[string]any{"missingProperty": "dealDate"},
			SchemaPath: "#/required",
		})
	}

	if trade.Quantity <= 0 {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".quantity",
			Keyword:    "exclusiveMinimum",
			Message:    "quantity must be greater than 0",
			Params:     map[string]any{"limit": 0},
			SchemaPath: "#/properties/quantity/exclusiveMinimum",
		})
	}

	if trade.DeliveryPeriod != nil &&
		trade.DeliveryPeriod.StartDate != nil && trade.DeliveryPeriod.EndDate != nil &&
		trade.DeliveryPeriod.StartDate.After(*trade.DeliveryPeriod.EndDate) {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".deliveryPeriod.startDate",
			Keyword:    "formatMaximum",
			Message:    "deliveryPeriod start date must not be after its end date",
			Params:     map[string]any{"limit": domain.FormatDate(trade.DeliveryPeriod.EndDate)},
			SchemaPath: "#/properties/deliveryPeriod/properties/startDate/formatMaximum",
		})
	}

	// KOMGO trades carry exactly the etrmId matching the owning company's
	// role. VAKT trades may legitimately carry both.
	if trade.Source == domain.SourceKomgo {
		if trade.SellerRole(companyStaticID) {
			if trade.SellerEtrmID == "" {
				errs = append(errs, dErrors.FieldError{
					DataPath:   ".sellerEtrmId",
					Keyword:    "required",
					Message:    "should have required property 'sellerEtrmId'",
					Params:     map[string]any{"missingProperty": "sellerEtrmId"},
					SchemaPath: "#/required",
				})
			}
		} else if trade.BuyerEtrmID == "" {
			errs = append(errs, dErrors.FieldError{
				DataPath:   ".buyerEtrmId",
				Keyword:    "required",
				Message:    "should have required property 'buyerEtrmId'",
				Params:     map[string]any{"missingProperty": "buyerEtrmId"},
				SchemaPath: "#/required",
			})
		}
	}

	// Laytime and demurrage terms only make sense on the financing side of a
	// purchase; sale-side trades must not carry them.
	if trade.SellerRole(companyStaticID) {
		for _, field := range []struct {
			path  string
			value string
		}{
			{"laytime", trade.Laytime},
			{"demurrageTerms", trade.DemurrageTerms},
		} {
			path, value := field.path, field.value
			if value != "" {
				errs = append(errs, dErrors.FieldError{
					DataPath:   "." + path,
					Keyword:    "additionalProperties",
					Message:    fmt.Sprintf("property '%s' is not allowed on a sale trade", path),
					Params:     map[string]any{"additionalProperty": path},
					SchemaPath: "#/additionalProperties",
				})
			}
		}
	}

	return errs
}

// Version 1 is the original VAKT contract: payment terms and general terms
// are mandatory and the delivery location field does not exist yet.
func validateV1(trade domain.Trade, companyStaticID string) []dErrors.FieldError {
	errs := validateCore(trade, companyStaticID)
	if trade.PaymentTerms == nil {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".paymentTerms",
			Keyword:    "required",
			Message:    "should have required property 'paymentTerms'",
			Params:     map[string]any{"missingProperty": "paymentTerms"},
			SchemaPath: "#/required",
		})
	}
	if trade.GeneralTermsAndConditions == "" {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".generalTermsAndConditions",
			Keyword:    "required",
			Message:    "should have required property 'generalTermsAndConditions'",
			Params:     map[string]any{"missingProperty": "generalTermsAndConditions"},
			SchemaPath: "#/required",
		})
	}
	if trade.DeliveryLocation != "" {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".deliveryLocation",
			Keyword:    "additionalProperties",
			Message:    "property 'deliveryLocation' requires schema version 2",
			Params:     map[string]any{"additionalProperty": "deliveryLocation"},
			SchemaPath: "#/additionalProperties",
		})
	}
	return errs
}

// Version 2 relaxes v1: general terms become optional, payment terms may be
// omitted for open-credit trades, and deliveryLocation is legal.
func validateV2(trade domain.Trade, companyStaticID string) []dErrors.FieldError {
	errs := validateCore(trade, companyStaticID)
	if trade.PaymentTerms == nil && trade.CreditRequirement != domain.CreditOpenCredit {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".paymentTerms",
			Keyword:    "required",
			Message:    "should have required property 'paymentTerms'",
			Params:     map[string]any{"missingProperty": "paymentTerms"},
			SchemaPath: "#/required",
		})
	}
	return errs
}

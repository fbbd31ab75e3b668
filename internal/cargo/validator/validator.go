package validator

import (
	"fmt"

	"tradecargo/internal/domain"
	dErrors "tradecargo/pkg/errors"
)

// Validator performs structural validation of a cargo movement. Rules are
// gated by the entity's schema version; the trade-must-exist guard needs store
// state and lives with the handler/processor.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate returns nil when the cargo is structurally valid, otherwise the
// ordered list of field errors: schema errors first, then one laycan error
// per offending parcel.
func (v *Validator) Validate(cargo domain.Cargo) []dErrors.FieldError {
	schema, ok := schemaForVersion(cargo.Version)
	if !ok {
		return []dErrors.FieldError{{
			DataPath:   ".version",
			Keyword:    "enum",
			Message:    fmt.Sprintf("unsupported schema version: %d", cargo.Version),
			Params:     map[string]any{"allowedValues": []int{1, 2}},
			SchemaPath: "#/properties/version/enum",
		}}
	}

	errs := schema(cargo)

	for i, parcel := range cargo.Parcels {
		lp := parcel.LaycanPeriod
		if lp == nil || lp.StartDate == nil || lp.EndDate == nil {
			continue
		}
		if lp.StartDate.After(*lp.EndDate) {
			errs = append(errs, dErrors.FieldError{
				DataPath:   fmt.Sprintf(".parcels[%d].laycanPeriod.startDate", i),
				Keyword:    "formatMaximum",
				Message:    "laycan start date must not be after its end date",
				Params:     map[string]any{"limit": domain.FormatDate(lp.EndDate)},
				SchemaPath: "#/properties/parcels/items/properties/laycanPeriod/properties/startDate/formatMaximum",
			})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type schemaFunc func(cargo domain.Cargo) []dErrors.FieldError

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

func validateCore(cargo domain.Cargo) []dErrors.FieldError {
	var errs []dErrors.FieldError
	if cargo.CargoID == "" {
		errs = append(errs, dErrors.FieldError{
			DataPath:   ".cargoId",
			Keyword:    "required",
			Message:    "should have required property 'cargoId'",
			Params:     map[string]any{"missingProperty": "cargoId"},
			SchemaPath: "#/required",
		})
	}
	for i, parcel := range cargo.Parcels {
		if parcel.Quantity < 0 {
			errs = append(errs, dErrors.FieldError{
				DataPath:   fmt.Sprintf(".parcels[%d].quantity", i),
				Keyword:    "minimum",
				Message:    "parcel quantity must not be negative",
				Params:     map[string]any{"limit": 0},
				SchemaPath: "#/properties/parcels/items/properties/quantity/minimum",
			})
		}
	}
	return errs
}

// Version 1 predates deemed bill-of-lading dates on parcels.
func validateV1(cargo domain.Cargo) []dErrors.FieldError {
	errs := validateCore(cargo)
	for i, parcel := range cargo.Parcels {
		if parcel.DeemedBLDate != nil {
			errs = append(errs, dErrors.FieldError{
				DataPath:   fmt.Sprintf(".parcels[%d].deemedBLDate", i),
				Keyword:    "additionalProperties",
				Message:    "property 'deemedBLDate' requires schema version 2",
				Params:     map[string]any{"additionalProperty": "deemedBLDate"},
				SchemaPath: "#/additionalProperties",
			})
		}
	}
	return errs
}

func validateV2(cargo domain.Cargo) []dErrors.FieldError {
	return validateCore(cargo)
}

package domain

import (
	"strings"
	"time"
)

// Grade of a North Sea crude cargo.
type Grade string

const (
	GradeBrent   Grade = "BRENT"
	GradeForties Grade = "FORTIES"
	GradeOseberg Grade = "OSEBERG"
	GradeEkofisk Grade = "EKOFISK"
	GradeTroll   Grade = "TROLL"
)

// gradeByPrefix maps the first letter of a VAKT cargoId to its grade. An
// unmatched letter leaves the grade unset.
var gradeByPrefix = map[string]Grade{
	"b": GradeBrent,
	"f": GradeForties,
	"o": GradeOseberg,
	"e": GradeEkofisk,
	"t": GradeTroll,
}

// InferGrade resolves a grade from a cargoId prefix.
func InferGrade(cargoID string) Grade {
	if cargoID == "" {
		return ""
	}
	return gradeByPrefix[strings.ToLower(cargoID[:1])]
}

// Parcel is a shipment sub-unit of a cargo with its own laycan window.
type Parcel struct {
	ID              string     `json:"id"`
	LaycanPeriod    *Period    `json:"laycanPeriod,omitempty"`
	ModeOfTransport string     `json:"modeOfTransport,omitempty"`
	VesselIMO       int64      `json:"vesselIMO,omitempty"`
	VesselName      string     `json:"vesselName,omitempty"`
	LoadingPort     string     `json:"loadingPort,omitempty"`
	DischargeArea   string     `json:"dischargeArea,omitempty"`
	Inspector       string     `json:"inspector,omitempty"`
	DeemedBLDate    *time.Time `json:"deemedBLDate,omitempty"`
	Quantity        float64    `json:"quantity"`
}

// Cargo is the canonical cargo movement tied to a trade by (source, sourceId).
type Cargo struct {
	ID       string `json:"_id,omitempty"`
	Source   Source `json:"source"`
	SourceID string `json:"sourceId"`
	CargoID  string `json:"cargoId"`
	Status   Status `json:"status"`

	Grade   Grade    `json:"grade,omitempty"`
	Parcels []Parcel `json:"parcels,omitempty"`

	Version int `json:"version"`

	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// CargoAttributes is everything a caller supplies besides source and sourceId.
// Status is never an input: a movement mirrors its owning trade's status, which
// the service and processor resolve at create time.
type CargoAttributes struct {
	CargoID string
	Grade   Grade
	Parcels []Parcel
	Version int
}

// NewCargo constructs the canonical cargo. For VAKT movements with no grade on
// the wire, the grade is inferred from the cargoId prefix. The status starts at
// the purchase default until the owning trade is known.
func NewCargo(source Source, sourceID string, attrs CargoAttributes) Cargo {
	grade := attrs.Grade
	if grade == "" && source == SourceVakt {
		grade = InferGrade(attrs.CargoID)
	}
	status := StatusToBeFinanced
	version := attrs.Version
	if version == 0 {
		version = 1
	}
	return Cargo{
		Source:   source,
		SourceID: sourceID,
		CargoID:  attrs.CargoID,
		Status:   status,
		Grade:    grade,
		Parcels:  attrs.Parcels,
		Version:  version,
	}
}

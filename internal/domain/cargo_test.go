package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferGrade(t *testing.T) {
	cases := []struct {
		cargoID string
		want    Grade
	}{
		{"B1234", GradeBrent},
		{"b1234", GradeBrent},
		{"F-99", GradeForties},
		{"o556", GradeOseberg},
		{"E12", GradeEkofisk},
		{"T7", GradeTroll},
		{"X999", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InferGrade(tc.cargoID), "cargoId %q", tc.cargoID)
	}
}

func TestNewCargo(t *testing.T) {
	t.Run("VAKT cargo without grade infers from cargoId prefix", func(t *testing.T) {
		cargo := NewCargo(SourceVakt, "V-1", CargoAttributes{CargoID: "F0401"})
		assert.Equal(t, GradeForties, cargo.Grade)
	})

	t.Run("explicit grade wins over inference", func(t *testing.T) {
		cargo := NewCargo(SourceVakt, "V-1", CargoAttributes{CargoID: "F0401", Grade: GradeBrent})
		assert.Equal(t, GradeBrent, cargo.Grade)
	})

	t.Run("KOMGO cargo never infers a grade", func(t *testing.T) {
		cargo := NewCargo(SourceKomgo, "K-1", CargoAttributes{CargoID: "F0401"})
		assert.Equal(t, Grade(""), cargo.Grade)
	})

	t.Run("status and version get defaults", func(t *testing.T) {
		cargo := NewCargo(SourceVakt, "V-1", CargoAttributes{CargoID: "B1"})
		assert.Equal(t, StatusToBeFinanced, cargo.Status)
		assert.Equal(t, 1, cargo.Version)
	})
}

package pricing

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"strings"
)

const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
	UnitPiece      = "un"
	UnitCubicCm    = "cc"
)

// CanonicalUnits is the vocabulary an ingredient can be bought in.
var CanonicalUnits = []string{UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPiece, UnitCubicCm}

func IsCanonicalUnit(unit string) bool {
	for _, u := range CanonicalUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// NormalizeUnit lowercases and trims a unit code.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// FindExtraUnit returns the equivalence declared for unit, if any.
func FindExtraUnit(extra []entities.Quantity, unit string) (entities.Quantity, bool) {
	for _, q := range extra {
		if q.Unit == unit {
			return q, true
		}
	}
	return entities.Quantity{}, false
}

// ValidateExtraUnits checks that every unit appears at most once and that
// amounts are not negative. A unit equal to canonical is rejected too, it
// would never be looked up.
func ValidateExtraUnits(canonical string, extra []entities.Quantity) error {
	seen := make(map[string]struct{}, len(extra))
	for _, q := range extra {
		if q.Unit == "" || q.Amount < 0 {
			return domain.ErrInvalidQuantity
		}
		if _, ok := seen[q.Unit]; ok || q.Unit == canonical {
			return domain.ErrDuplicateExtraUnit
		}
		seen[q.Unit] = struct{}{}
	}
	return nil
}

// UnitsOf lists every unit the ingredient can be expressed in, canonical first.
func UnitsOf(ing *entities.Ingredient) []string {
	units := make([]string, 0, len(ing.ExtraUnits)+1)
	units = append(units, ing.Unit)
	for _, q := range ing.ExtraUnits {
		units = append(units, q.Unit)
	}
	return units
}

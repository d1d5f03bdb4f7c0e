package models

import (
	"errors"
	"fmt"
	"strings"

	"jeffrey-jian/spendsplit/internal/fraction"
)

var (
	// ErrEmptyPersonName is returned when a person name is blank after
	// normalization.
	ErrEmptyPersonName = errors.New("person name cannot be empty")

	// ErrNonPositiveWeight is returned when a portion weight is zero or
	// negative.
	ErrNonPositiveWeight = errors.New("portion weight must be positive")
)

// NormalizeName collapses internal whitespace and trims the ends, so
// "  Alice   Tan " becomes "Alice Tan". Casing is preserved.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// SameName reports whether two names identify the same person. Comparison
// ignores casing and surrounding or repeated whitespace.
func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

// Portion assigns one participant a relative weight of a transaction. The
// weight carries no unit of its own; a participant's share is the
// transaction amount times weight over the sum of all weights.
type Portion struct {
	PersonName string
	Weight     fraction.Fraction
}

// NewPortion creates a portion with a normalized name and a positive weight.
func NewPortion(name string, weight fraction.Fraction) (Portion, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return Portion{}, ErrEmptyPersonName
	}
	if !weight.IsPositive() {
		return Portion{}, ErrNonPositiveWeight
	}
	return Portion{PersonName: normalized, Weight: weight}, nil
}

// NewPortionFromStrings parses the weight, either a decimal such as "0.5" or
// a rational such as "1/3", and creates a portion.
func NewPortionFromStrings(name, weight string) (Portion, error) {
	w, err := fraction.ParseText(weight)
	if err != nil {
		return Portion{}, fmt.Errorf("invalid weight for %s: %w", name, err)
	}
	return NewPortion(name, w)
}

// Equal reports strict equality: identical name including casing, and equal
// weight.
func (p Portion) Equal(other Portion) bool {
	return p.PersonName == other.PersonName && p.Weight.Equal(other.Weight)
}

// Same reports whether both portions give the same person the same weight,
// comparing names case-insensitively.
func (p Portion) Same(other Portion) bool {
	return SameName(p.PersonName, other.PersonName) && p.Weight.Equal(other.Weight)
}

func (p Portion) String() string {
	return fmt.Sprintf("%s=%s", p.PersonName, p.Weight)
}

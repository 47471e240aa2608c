package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrValidation = errors.New("validation failure")

// ValidationError describes a field value that was rejected or coerced.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// CoercePrice parses a price. Input that is not a finite non-negative number
// coerces to 0; the returned error reports what happened but the value is
// always usable.
func CoercePrice(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimPrefix(s, "₹")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: "price", Value: raw, Reason: "not a number, using 0"}
	}
	if v < 0 {
		return 0, &ValidationError{Field: "price", Value: raw, Reason: "negative, using 0"}
	}
	return v, nil
}

// CoerceGroupSize parses a group size; anything below 1 becomes 1.
func CoerceGroupSize(s string) (int, error) {
	raw := s
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1, &ValidationError{Field: "groupSize", Value: raw, Reason: "not an integer, using 1"}
	}
	if n < 1 {
		return 1, &ValidationError{Field: "groupSize", Value: raw, Reason: "must be at least 1, using 1"}
	}
	return n, nil
}

func ParsePricingUnit(s string) (PricingUnit, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(s)), " "))
	for _, u := range PricingUnits {
		if strings.ToLower(string(u)) == norm {
			return u, nil
		}
	}
	return "", &ValidationError{Field: "unit", Value: s, Reason: "expected one of Per Pax|Per Room|Per Person|Total Package"}
}

func (u PricingUnit) Valid() bool {
	for _, x := range PricingUnits {
		if u == x {
			return true
		}
	}
	return false
}

// SplitLines turns "one entry per line" text into a list, dropping blank lines.
func SplitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

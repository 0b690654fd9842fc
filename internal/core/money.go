// Package core holds the pass-through entity shapes and the small amount of
// client-side parsing and formatting the views need before talking to the
// backend.
package core

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned for amounts that cannot be parsed or are not
// strictly positive.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is an amount in cents. Inputs are parsed to cents to avoid
// floating-point surprises before the value goes on the wire.
type Money struct {
	Cents int64
}

// ParseDecimalToCents converts a decimal string to cents with proper rounding.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and performs
// half-up rounding on the third decimal place. The result is always positive cents.
// Returns an error for invalid formats, negative values, or zero amounts.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only positive values allowed
		return 0, ErrInvalidAmount
	}
	// Split into integer and fractional part
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	// Convert integer part - check for overflow
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64 = 0
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 {
				d3 := int64(fracPart[2] - '0')
				if d3 >= 5 {
					fracCents++
				}
			}
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// ParseAmount parses a user-entered amount string into the float the backend
// expects. The string goes through cents first so "12,34" and trailing digits
// round the same way everywhere in the client.
func ParseAmount(s string) (float64, error) {
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return 0, err
	}
	return float64(cents) / 100.0, nil
}

// Float64 returns the amount as a float for display and wire payloads.
// Use cents for calculations.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100.0
}

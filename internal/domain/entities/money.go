package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds to currency precision (2 places), half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseAmount parses a stored decimal amount. The result is invalid when raw is
// empty or not a finite number (NaN, Infinity and garbage all fail to parse).
func ParseAmount(raw string) decimal.NullDecimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// FormatAmount is the storage form of an amount. Invalid amounts are stored empty.
func FormatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// IsBillable reports whether an amount may contribute to an estimate.
func IsBillable(d decimal.NullDecimal) bool {
	return d.Valid && !d.Decimal.IsNegative()
}

package entity

import (
	"github.com/shopspring/decimal"

	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
)

// Monetary values cross the wire as JSON numbers but are stored as integer
// cents, so a deposit of 0.1 followed by one of 0.2 can never leave a balance
// of 0.30000000000000004 in the ledger.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for amounts
const MaxDecimalPlaces = 2

// CentsFromFloat validates a transaction amount and converts it to cents.
// The amount must be positive and have at most two decimal places.
func CentsFromFloat(amount float64) (int64, error) {
	d := decimal.NewFromFloat(amount)
	if !d.IsPositive() {
		return 0, errs.ErrInvalidAmount
	}

	shifted := d.Shift(MaxDecimalPlaces)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, errs.ErrInvalidAmount
	}

	return shifted.IntPart(), nil
}

// FloatFromCents converts an amount in cents back to the decimal value
// exposed by the API.
func FloatFromCents(cents int64) float64 {
	f, _ := decimal.New(cents, -MaxDecimalPlaces).Float64()
	return f
}

// FormatCents renders an amount in cents as a string with two decimal places,
// e.g. 1015 becomes "10.15".
func FormatCents(cents int64) string {
	return decimal.New(cents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}

package domain

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxAmount is the largest currency amount whose value in cents fits an
// int64.
const MaxAmount = float64(math.MaxInt64 / 100)

// Cents converts a currency amount to integer cents, rounding half away
// from zero. Budget comparisons are exact on cents. Amounts outside the
// int64 range saturate at math.MaxInt64 or math.MinInt64; NaN is zero.
func Cents(amount float64) int64 {
	c := math.Round(amount * 100)
	switch {
	case math.IsNaN(c):
		return 0
	case c >= math.MaxInt64:
		return math.MaxInt64
	case c <= math.MinInt64:
		return math.MinInt64
	}
	return int64(c)
}

// SpendCents returns daily times days in cents. ok is false when the
// product does not fit an int64, in which case total is math.MaxInt64.
// Non-positive inputs spend nothing.
func SpendCents(daily float64, days int) (total int64, ok bool) {
	d := Cents(daily)
	n := int64(days)
	if d <= 0 || n <= 0 {
		return 0, true
	}
	if d > math.MaxInt64/n {
		return math.MaxInt64, false
	}
	return d * n, true
}

var moneyPrinter = message.NewPrinter(language.English)

// FormatCents renders cents as dollars with thousands separators. Cents are
// printed only when non-zero: $120,000 or $1,250.50.
func FormatCents(cents int64) string {
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		abs = uint64(-(cents + 1)) + 1
	}
	dollars, rem := abs/100, abs%100
	whole := sign + "$" + moneyPrinter.Sprintf("%d", dollars)
	if rem == 0 {
		return whole
	}
	return fmt.Sprintf("%s.%02d", whole, rem)
}

package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const NairaSign = "₦"

// GroupThousands renders a non-negative integral decimal with comma
// separators, e.g. 1234567 -> "1,234,567".
func GroupThousands(d decimal.Decimal) string {
	digits := d.Truncate(0).Abs().String()
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Naira formats an integral amount with the naira sign and thousand
// separators.
func Naira(amount int64) string {
	return NairaSign + GroupThousands(decimal.NewFromInt(amount))
}

// NairaPlain formats an amount with the naira sign and no grouping.
func NairaPlain(amount int64) string {
	return NairaSign + decimal.NewFromInt(amount).String()
}

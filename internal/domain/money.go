package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Rupees is a whole-rupee amount as it appears in results
type Rupees int64

// RoundRupees rounds an amount to the nearest rupee (half away from zero).
// It is the only rounding applied to computed figures.
func RoundRupees(d decimal.Decimal) Rupees {
	return Rupees(d.Round(0).IntPart())
}

// Decimal converts back to a decimal value
func (r Rupees) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(r))
}

// String renders the amount with the rupee sign and Indian digit grouping
func (r Rupees) String() string {
	return FormatINR(r.Decimal())
}

// FormatINR formats an amount as ₹12,34,567 (lakh/crore grouping), rounded to the rupee.
func FormatINR(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + "₹" + groupIndian(strconv.FormatInt(n, 10))
}

// groupIndian inserts separators after the last three digits and then every two
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatRate renders a fractional rate as a percentage label, e.g. 0.05 -> "5%"
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

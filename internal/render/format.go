package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Amount formats v with comma grouping and two decimals: 63179.714 -> "63,179.71".
func Amount(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.IntPart()
	frac := d.Sub(decimal.NewFromInt(whole)).StringFixed(2)
	return sign + humanize.Comma(whole) + frac[1:]
}

// Currency formats v as US dollars: -1234.5 -> "-$1,234.50".
func Currency(v float64) string {
	s := Amount(v)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// SignedChange formats a move as "+2,161.42 (3.54%)".
func SignedChange(abs, pct float64) string {
	sign := "+"
	if decimal.NewFromFloat(abs).Round(2).IsNegative() {
		sign = "-"
	}
	a := strings.TrimPrefix(Amount(abs), "-")
	p := decimal.NewFromFloat(pct).Abs().StringFixed(2)
	return fmt.Sprintf("%s%s (%s%%)", sign, a, p)
}

// Volume formats a volume with grouping and two decimals.
func Volume(v float64) string {
	return humanize.CommafWithDigits(decimal.NewFromFloat(v).Round(2).InexactFloat64(), 2)
}

// Percent formats a 0~1 ratio as a percentage.
func Percent(ratio float64) string {
	return decimal.NewFromFloat(ratio*100).StringFixed(0) + "%"
}

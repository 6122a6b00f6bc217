// Package money parses and formats the financial quantities crossing the
// CLI boundary: currency amounts, interest rates and period frequencies.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/0xdespot/compound/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// frequencies maps accepted tokens to periods per year.
var frequencies = map[string]model.Frequency{
	"daily":        model.Daily,
	"weekly":       model.Weekly,
	"biweekly":     model.Biweekly,
	"monthly":      model.Monthly,
	"quarterly":    model.Quarterly,
	"semiannually": model.Semiannually,
	"annually":     model.Annually,
	"yearly":       model.Annually,
}

const frequencyTokens = "daily, weekly, biweekly, monthly, quarterly, semiannually, annually, yearly"

// ParseAmount reads a currency amount, tolerating "$", commas and spaces:
// "10000", "10,000", "$1,234.56".
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// ParseRate reads an annual interest rate and returns it as a fraction.
// "7%" divides by 100, and so does any bare value of 1 or more ("7" means
// 7%); values below 1 such as "0.07" or ".07" pass through unchanged.
func ParseRate(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	pct := strings.Contains(v, "%")
	if pct {
		v = strings.NewReplacer("%", "", " ", "").Replace(v)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q", s)
	}
	if pct || d.GreaterThanOrEqual(one) {
		return d.Div(hundred), nil
	}
	return d, nil
}

// ParseFrequency reads a frequency token ("monthly", "daily", ...) or a
// raw periods-per-year integer.
func ParseFrequency(s string) (model.Frequency, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if f, ok := frequencies[v]; ok {
		return f, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("frequency must be at least 1 per year, got %d", n)
		}
		return model.Frequency(n), nil
	}
	return 0, fmt.Errorf("invalid frequency %q (use %s, or an integer)", s, frequencyTokens)
}

// Currency renders an amount with thousands separators and cents:
// Currency(d, "$") gives "$19,671.51".
func Currency(d decimal.Decimal, symbol string) string {
	return symbol + humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

// Percent renders a fractional rate as a percentage with the given number
// of decimals: Percent(0.0723, 2) gives "7.23%".
func Percent(f float64, decimals int) string {
	return strconv.FormatFloat(f*100, 'f', decimals, 64) + "%"
}

// Package render turns a projection result into one of the supported
// output formats: a colored terminal report, plain ASCII, JSON or CSV.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/0xdespot/compound/internal/model"
)

// Format names accepted by -o/--output.
const (
	FormatRich  = "rich"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Options control which report sections are rendered.
type Options struct {
	ShowChart bool
	ShowTable bool
	Quiet     bool   // print only the final balance
	Currency  string // currency symbol, "$" when empty
}

func (o Options) symbol() string {
	if o.Currency == "" {
		return "$"
	}
	return o.Currency
}

// Formatter renders a projection result to a string without a trailing
// newline; the caller appends one.
type Formatter interface {
	Render(res *model.ProjectionResult, opts Options) (string, error)
}

var formatters = map[string]Formatter{}

func register(name string, f Formatter) { formatters[name] = f }

// Get returns the formatter registered under name.
func Get(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (use %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the registered formats in stable order.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// perLabel is the short per-period suffix for contribution amounts,
// as in "$500/mo".
func perLabel(f model.Frequency) string {
	switch f {
	case model.Annually:
		return "yr"
	case model.Monthly:
		return "mo"
	case model.Biweekly:
		return "2wk"
	case model.Weekly:
		return "wk"
	}
	return f.String()
}

// sampleRows picks the table rows for long projections: every year up to
// ten, otherwise year 1, the multiples of 5 through 50, and the final year.
func sampleRows(rows []model.YearSnapshot) []model.YearSnapshot {
	if len(rows) <= 10 {
		return rows
	}
	keep := map[int]struct{}{0: {}, len(rows) - 1: {}}
	for y := 5; y <= 50 && y <= len(rows); y += 5 {
		keep[y-1] = struct{}{}
	}
	idx := make([]int, 0, len(keep))
	for i := range keep {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]model.YearSnapshot, 0, len(idx))
	for _, i := range idx {
		out = append(out, rows[i])
	}
	return out
}

// balances extracts the year-end balances for charting.
func balances(res *model.ProjectionResult) []float64 {
	vals := make([]float64, len(res.Breakdown))
	for i, snap := range res.Breakdown {
		vals[i] = snap.Balance.InexactFloat64()
	}
	return vals
}

// totalGrowthPct is the overall balance growth relative to the principal.
func totalGrowthPct(res *model.ProjectionResult) float64 {
	p := res.Principal.InexactFloat64()
	if p == 0 {
		return 0
	}
	return (res.FinalBalance.InexactFloat64() - p) / p * 100
}

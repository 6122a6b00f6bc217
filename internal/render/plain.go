package render

import (
	"fmt"
	"strings"

	"github.com/0xdespot/compound/internal/chart"
	"github.com/0xdespot/compound/internal/model"
	"github.com/0xdespot/compound/internal/money"
)

func init() { register(FormatPlain, plainFormatter{}) }

// plainFormatter writes the same report as rich without ANSI codes,
// boxed with ASCII borders. Suited to logs and dumb terminals.
type plainFormatter struct{}

func (plainFormatter) Render(res *model.ProjectionResult, opts Options) (string, error) {
	sym := opts.symbol()
	if opts.Quiet {
		return money.Currency(res.FinalBalance, sym), nil
	}

	lines := []string{plainHeader(res, sym), "", plainMetrics(res, sym), ""}
	if opts.ShowChart && len(res.Breakdown) > 0 {
		growth := fmt.Sprintf("Growth: %s  %+.1f%%", chart.Spark(balances(res), 0), totalGrowthPct(res))
		lines = append(lines, growth, "")
	}
	if opts.ShowTable && len(res.Breakdown) > 0 {
		lines = append(lines, plainTable(res, sym))
	}
	return strings.Join(lines, "\n"), nil
}

func plainHeader(res *model.ProjectionResult, sym string) string {
	summary := money.Currency(res.Principal, sym)
	if res.Contribution.IsPositive() {
		summary += " + " + money.Currency(res.Contribution, sym) + "/" + perLabel(res.ContributionFreq)
	}
	summary += fmt.Sprintf(" -> %s over %d years @ %s (%s)",
		money.Currency(res.FinalBalance, sym), res.Years,
		money.Percent(res.Rate.InexactFloat64(), 2), res.CompoundFreq)

	width := len(summary) + 4
	if width < 50 {
		width = 50
	}
	border := "+" + strings.Repeat("-", width-2) + "+"
	return strings.Join([]string{
		border,
		"|  " + padRight(reportTitle, width-4) + "|",
		"|  " + padRight(summary, width-4) + "|",
		border,
	}, "\n")
}

func plainMetrics(res *model.ProjectionResult, sym string) string {
	doubling := "N/A"
	if res.DoublingTime != nil {
		doubling = fmt.Sprintf("%.1f years", *res.DoublingTime)
	}
	type metric struct {
		label string
		value string
	}
	metrics := []metric{{"Total Interest", money.Currency(res.TotalInterest, sym)}}
	if res.TotalContributions.IsPositive() {
		metrics = append(metrics, metric{"Total Contributions", money.Currency(res.TotalContributions, sym)})
	}
	metrics = append(metrics,
		metric{"Effective APY", money.Percent(res.EffectiveAPY, 2)},
		metric{"Doubling Time", doubling},
	)

	labelWidth, valueWidth := 0, 0
	for _, m := range metrics {
		if len(m.label) > labelWidth {
			labelWidth = len(m.label)
		}
		if len(m.value) > valueWidth {
			valueWidth = len(m.value)
		}
	}

	border := "+" + strings.Repeat("-", labelWidth+valueWidth+5) + "+"
	lines := []string{border}
	for _, m := range metrics {
		lines = append(lines, "| "+padRight(m.label, labelWidth)+" | "+padLeft(m.value, valueWidth)+" |")
	}
	lines = append(lines, border)
	return strings.Join(lines, "\n")
}

func plainTable(res *model.ProjectionResult, sym string) string {
	contributing := res.Contribution.IsPositive()

	var lines []string
	if contributing {
		lines = append(lines,
			"Year |    Balance    |   Interest   | Contributions | Cumulative",
			"-----|---------------|--------------|---------------|------------")
	} else {
		lines = append(lines,
			"Year |    Balance    |   Interest   |  Growth  | Cumulative",
			"-----|---------------|--------------|----------|------------")
	}

	for _, snap := range sampleRows(res.Breakdown) {
		if contributing {
			lines = append(lines, fmt.Sprintf("%4d | %13s | %12s | %13s | %10s",
				snap.Year,
				money.Currency(snap.Balance, sym),
				money.Currency(snap.Interest, sym),
				money.Currency(snap.Contributions, sym),
				money.Currency(snap.CumulativeInterest, sym)))
		} else {
			lines = append(lines, fmt.Sprintf("%4d | %13s | %12s | %7.2f%% | %10s",
				snap.Year,
				money.Currency(snap.Balance, sym),
				money.Currency(snap.Interest, sym),
				snap.GrowthPct,
				money.Currency(snap.CumulativeInterest, sym)))
		}
	}
	return strings.Join(lines, "\n")
}

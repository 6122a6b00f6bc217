package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/0xdespot/compound/internal/chart"
	"github.com/0xdespot/compound/internal/model"
	"github.com/0xdespot/compound/internal/money"

	"github.com/fatih/color"
)

func init() { register(FormatRich, richFormatter{}) }

// richFormatter writes the full ANSI report: summary panel, key metrics,
// growth sparkline and year table. Colors are always emitted; plain is
// the uncolored format.
type richFormatter struct{}

const reportTitle = "COMPOUND INTEREST PROJECTION"

// style builds a Color with ANSI output pinned on, so the rich format
// stays rich when stdout is redirected.
func style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	bold      = style(color.Bold)
	dim       = style(color.Faint)
	blue      = style(color.FgBlue)
	cyan      = style(color.FgCyan)
	cyanBold  = style(color.FgCyan, color.Bold)
	green     = style(color.FgGreen)
	greenBold = style(color.FgGreen, color.Bold)
	yellow    = style(color.FgYellow)
)

// seg is a run of text with an optional style, so panel widths can be
// computed on the unstyled text.
type seg struct {
	text  string
	color *color.Color
}

func (s seg) render() string {
	if s.color == nil {
		return s.text
	}
	return s.color.Sprint(s.text)
}

func (richFormatter) Render(res *model.ProjectionResult, opts Options) (string, error) {
	sym := opts.symbol()
	if opts.Quiet {
		return money.Currency(res.FinalBalance, sym), nil
	}

	sections := []string{
		renderPanel(summarySegments(res, sym)),
		renderMetrics(res, sym),
	}
	if opts.ShowChart && len(res.Breakdown) > 0 {
		sections = append(sections, renderGrowthLine(res))
	}
	if opts.ShowTable && len(res.Breakdown) > 0 {
		sections = append(sections, renderYearTable(res, sym))
	}
	return strings.Join(sections, "\n\n"), nil
}

func summarySegments(res *model.ProjectionResult, sym string) []seg {
	segs := []seg{{money.Currency(res.Principal, sym), cyanBold}}
	if res.Contribution.IsPositive() {
		segs = append(segs,
			seg{" + ", nil},
			seg{money.Currency(res.Contribution, sym) + "/" + perLabel(res.ContributionFreq), cyan},
		)
	}
	segs = append(segs,
		seg{" → ", dim},
		seg{money.Currency(res.FinalBalance, sym), greenBold},
		seg{" over ", nil},
		seg{fmt.Sprintf("%d", res.Years), bold},
		seg{" years @ ", nil},
		seg{money.Percent(res.Rate.InexactFloat64(), 2), bold},
		seg{" ", nil},
		seg{"(" + res.CompoundFreq.String() + ")", dim},
	)
	return segs
}

// renderPanel draws the summary inside a rounded box with the title
// centered in the top border.
func renderPanel(segs []seg) string {
	width := 0
	var text strings.Builder
	for _, s := range segs {
		width += utf8.RuneCountInString(s.text)
		text.WriteString(s.render())
	}

	inner := width + 2
	titleSpan := utf8.RuneCountInString(reportTitle) + 2
	if inner < titleSpan+2 {
		inner = titleSpan + 2
	}
	left := (inner - titleSpan) / 2
	right := inner - titleSpan - left

	var b strings.Builder
	b.WriteString(blue.Sprint("╭" + strings.Repeat("─", left)))
	b.WriteString(" " + bold.Sprint(reportTitle) + " ")
	b.WriteString(blue.Sprint(strings.Repeat("─", right) + "╮"))
	b.WriteString("\n")
	b.WriteString(blue.Sprint("│") + " ")
	b.WriteString(text.String())
	b.WriteString(strings.Repeat(" ", inner-width-1))
	b.WriteString(blue.Sprint("│"))
	b.WriteString("\n")
	b.WriteString(blue.Sprint("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}

func renderMetrics(res *model.ProjectionResult, sym string) string {
	type row struct {
		label string
		value string
		color *color.Color
	}
	var rows []row
	if res.TotalContributions.IsPositive() {
		rows = append(rows,
			row{"Starting Principal", money.Currency(res.Principal, sym), cyanBold},
			row{"Total Contributions", money.Currency(res.TotalContributions, sym), cyanBold},
		)
	}
	rows = append(rows,
		row{"Total Interest", money.Currency(res.TotalInterest, sym), greenBold},
		row{"Effective APY", money.Percent(res.EffectiveAPY, 2), bold},
	)
	doubling := "N/A"
	if res.DoublingTime != nil {
		doubling = fmt.Sprintf("%.1f years", *res.DoublingTime)
	}
	rows = append(rows, row{"Doubling Time", doubling, bold})

	labelWidth, valueWidth := 0, 0
	for _, r := range rows {
		if n := len(r.label); n > labelWidth {
			labelWidth = n
		}
		if n := utf8.RuneCountInString(r.value); n > valueWidth {
			valueWidth = n
		}
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + dim.Sprint(padRight(r.label, labelWidth)))
		b.WriteString("  " + r.color.Sprint(padLeft(r.value, valueWidth)))
	}
	return b.String()
}

func renderGrowthLine(res *model.ProjectionResult) string {
	return bold.Sprint("Growth: ") +
		green.Sprint(chart.Spark(balances(res), 0)) +
		greenBold.Sprintf("  %+.1f%%", totalGrowthPct(res))
}

func renderYearTable(res *model.ProjectionResult, sym string) string {
	contributing := res.Contribution.IsPositive()
	fourth := "Growth"
	var fourthStyle *color.Color
	if contributing {
		fourth = "Contributions"
		fourthStyle = yellow
	}
	headers := []string{"Year", "Balance", "Interest", fourth, "Cumulative"}
	styles := []*color.Color{dim, green, cyan, fourthStyle, bold}

	var cells [][]string
	for _, snap := range sampleRows(res.Breakdown) {
		col4 := fmt.Sprintf("%+.2f%%", snap.GrowthPct)
		if contributing {
			col4 = money.Currency(snap.Contributions, sym)
		}
		cells = append(cells, []string{
			fmt.Sprintf("%d", snap.Year),
			money.Currency(snap.Balance, sym),
			money.Currency(snap.Interest, sym),
			col4,
			money.Currency(snap.CumulativeInterest, sym),
		})
	}
	return buildTable("Year-by-Year Breakdown", headers, cells, styles)
}

// buildTable draws a boxed table with right-aligned columns, the title
// centered above and per-column cell colors.
func buildTable(title string, headers []string, cells [][]string, styles []*color.Color) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	total := 1
	for _, w := range widths {
		total += w + 3
	}

	var b strings.Builder
	pad := (total - utf8.RuneCountInString(title)) / 2
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(bold.Sprint(title))
	b.WriteString("\n")

	b.WriteString(dim.Sprint(rule("┌", "┬", "┐", widths)))
	b.WriteString("\n")
	for i, h := range headers {
		if i == 0 {
			b.WriteString(dim.Sprint("│"))
		}
		b.WriteString(" " + bold.Sprint(padLeft(h, widths[i])) + " " + dim.Sprint("│"))
	}
	b.WriteString("\n")
	b.WriteString(dim.Sprint(rule("├", "┼", "┤", widths)))
	b.WriteString("\n")
	for _, row := range cells {
		for i, c := range row {
			if i == 0 {
				b.WriteString(dim.Sprint("│"))
			}
			cell := padLeft(c, widths[i])
			if styles[i] != nil {
				cell = styles[i].Sprint(cell)
			}
			b.WriteString(" " + cell + " " + dim.Sprint("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(dim.Sprint(rule("└", "┴", "┘", widths)))
	return b.String()
}

func rule(left, mid, right string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(parts, mid) + right
}

func padLeft(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

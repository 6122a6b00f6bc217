package render

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/0xdespot/compound/internal/model"
)

func init() { register(FormatCSV, csvFormatter{}) }

// csvFormatter emits one row per year for spreadsheet import. Currency
// columns carry two decimals.
type csvFormatter struct{}

var csvHeader = []string{
	"year", "balance", "interest_earned", "contributions_ytd", "ytd_growth_pct", "cumulative_interest",
}

func (csvFormatter) Render(res *model.ProjectionResult, opts Options) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if opts.Quiet {
		_ = w.Write([]string{"final_amount"})
		_ = w.Write([]string{res.FinalBalance.StringFixed(2)})
	} else {
		_ = w.Write(csvHeader)
		for _, snap := range res.Breakdown {
			_ = w.Write([]string{
				strconv.Itoa(snap.Year),
				snap.Balance.StringFixed(2),
				snap.Interest.StringFixed(2),
				snap.Contributions.StringFixed(2),
				strconv.FormatFloat(snap.GrowthPct, 'f', 2, 64),
				snap.CumulativeInterest.StringFixed(2),
			})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

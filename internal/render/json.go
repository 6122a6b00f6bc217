package render

import (
	"encoding/json"

	"github.com/0xdespot/compound/internal/model"
)

func init() { register(FormatJSON, jsonFormatter{}) }

// jsonFormatter emits the machine-readable document. Currency values come
// out as plain numbers at cent precision; a doubling time that never
// happens is null.
type jsonFormatter struct{}

type jsonSummary struct {
	Principal          float64  `json:"principal"`
	FinalAmount        float64  `json:"final_amount"`
	TotalInterest      float64  `json:"total_interest"`
	TotalContributions float64  `json:"total_contributions"`
	EffectiveAPY       float64  `json:"effective_apy"`
	DoublingTimeYears  *float64 `json:"doubling_time_years"`
}

type jsonParameters struct {
	Rate                  float64 `json:"rate"`
	Years                 int     `json:"years"`
	CompoundFrequency     int     `json:"compound_frequency"`
	Contribution          float64 `json:"contribution"`
	ContributionFrequency int     `json:"contribution_frequency"`
}

type jsonYear struct {
	Year               int     `json:"year"`
	Balance            float64 `json:"balance"`
	InterestEarned     float64 `json:"interest_earned"`
	ContributionsYTD   float64 `json:"contributions_ytd"`
	YTDGrowthPct       float64 `json:"ytd_growth_pct"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

type jsonDoc struct {
	Summary         jsonSummary    `json:"summary"`
	Parameters      jsonParameters `json:"parameters"`
	YearlyBreakdown []jsonYear     `json:"yearly_breakdown"`
}

func (jsonFormatter) Render(res *model.ProjectionResult, opts Options) (string, error) {
	if opts.Quiet {
		out, err := json.Marshal(map[string]float64{"final_amount": res.FinalBalance.InexactFloat64()})
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	doc := jsonDoc{
		Summary: jsonSummary{
			Principal:          res.Principal.InexactFloat64(),
			FinalAmount:        res.FinalBalance.InexactFloat64(),
			TotalInterest:      res.TotalInterest.InexactFloat64(),
			TotalContributions: res.TotalContributions.InexactFloat64(),
			EffectiveAPY:       res.EffectiveAPY,
			DoublingTimeYears:  res.DoublingTime,
		},
		Parameters: jsonParameters{
			Rate:                  res.Rate.InexactFloat64(),
			Years:                 res.Years,
			CompoundFrequency:     int(res.CompoundFreq),
			Contribution:          res.Contribution.InexactFloat64(),
			ContributionFrequency: int(res.ContributionFreq),
		},
		YearlyBreakdown: make([]jsonYear, 0, len(res.Breakdown)),
	}
	for _, snap := range res.Breakdown {
		doc.YearlyBreakdown = append(doc.YearlyBreakdown, jsonYear{
			Year:               snap.Year,
			Balance:            snap.Balance.InexactFloat64(),
			InterestEarned:     snap.Interest.InexactFloat64(),
			ContributionsYTD:   snap.Contributions.InexactFloat64(),
			YTDGrowthPct:       snap.GrowthPct,
			CumulativeInterest: snap.CumulativeInterest.InexactFloat64(),
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

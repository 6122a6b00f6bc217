// Package calculator implements the compound interest projection engine.
// All functions are pure: identical inputs produce identical results.
package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/0xdespot/compound/internal/model"

	"github.com/shopspring/decimal"
)

// Project simulates balance growth period by period and aggregates a
// yearly breakdown plus summary metrics.
//
// Contributions are scaled so the amount deposited over a year equals
// contribution x contribution frequency no matter how often interest
// compounds: each compounding period receives
// contribution x contributionFreq / compoundFreq, deposited before that
// period's interest is applied.
//
// A balance outside the float64 range ends the projection with an error.
func Project(in model.ProjectionInput) (*model.ProjectionResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	n := int(in.CompoundFreq)
	rate := in.Rate.InexactFloat64()
	periodRate := rate / float64(n)
	perPeriod := in.Contribution.InexactFloat64() * float64(in.ContributionFreq) / float64(n)

	balance := in.Principal.InexactFloat64()
	if math.IsInf(balance, 0) {
		return nil, errors.New("principal exceeds the representable range")
	}
	totalContributions := 0.0
	cumulativeInterest := 0.0
	breakdown := make([]model.YearSnapshot, 0, in.Years)

	for year := 1; year <= in.Years; year++ {
		yearStart := balance
		yearContributions := 0.0

		for period := 0; period < n; period++ {
			if perPeriod > 0 {
				balance += perPeriod
				yearContributions += perPeriod
			}
			balance *= 1 + periodRate
		}

		// Rounding a non-finite value to a decimal panics.
		if math.IsInf(balance, 0) || math.IsNaN(balance) {
			return nil, fmt.Errorf("balance exceeds the representable range at year %d", year)
		}

		yearInterest := balance - yearStart - yearContributions
		cumulativeInterest += yearInterest
		totalContributions += yearContributions

		growth := 0.0
		if yearStart > 0 {
			growth = yearInterest / yearStart * 100
		}

		breakdown = append(breakdown, model.YearSnapshot{
			Year:               year,
			Balance:            roundCurrency(balance),
			Interest:           roundCurrency(yearInterest),
			Contributions:      roundCurrency(yearContributions),
			GrowthPct:          math.Round(growth*100) / 100,
			CumulativeInterest: roundCurrency(cumulativeInterest),
		})
	}

	final := roundCurrency(balance)
	if len(breakdown) > 0 {
		final = breakdown[len(breakdown)-1].Balance
	}

	return &model.ProjectionResult{
		Principal:          in.Principal,
		Rate:               in.Rate,
		Years:              in.Years,
		CompoundFreq:       in.CompoundFreq,
		Contribution:       in.Contribution,
		ContributionFreq:   in.ContributionFreq,
		Breakdown:          breakdown,
		FinalBalance:       final,
		TotalInterest:      roundCurrency(cumulativeInterest),
		TotalContributions: roundCurrency(totalContributions),
		EffectiveAPY:       EffectiveAPY(rate, n),
		DoublingTime:       DoublingTime(rate, n),
	}, nil
}

// roundCurrency rounds a raw balance to cents, ties away from zero.
func roundCurrency(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

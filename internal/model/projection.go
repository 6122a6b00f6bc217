package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProjectionInput holds the parameters for a single projection run.
type ProjectionInput struct {
	Principal        decimal.Decimal // starting balance, must be positive
	Rate             decimal.Decimal // annual rate as a fraction, 0.07 means 7%
	Years            int
	CompoundFreq     Frequency
	Contribution     decimal.Decimal // recurring deposit amount, zero disables
	ContributionFreq Frequency
}

// Validate checks the engine's preconditions. Years == 0 is legal here
// and yields an empty projection; the CLI rejects it earlier.
func (in ProjectionInput) Validate() error {
	if !in.Principal.IsPositive() {
		return errors.New("principal must be positive")
	}
	if in.Years < 0 {
		return errors.New("years cannot be negative")
	}
	if in.CompoundFreq < 1 {
		return fmt.Errorf("compounding frequency must be at least 1 per year, got %d", int(in.CompoundFreq))
	}
	if in.Contribution.IsNegative() {
		return errors.New("contribution cannot be negative")
	}
	if in.ContributionFreq < 1 {
		return fmt.Errorf("contribution frequency must be at least 1 per year, got %d", int(in.ContributionFreq))
	}
	return nil
}

// YearSnapshot captures the projection at the end of one year. Currency
// fields are rounded to cents.
type YearSnapshot struct {
	Year               int
	Balance            decimal.Decimal
	Interest           decimal.Decimal // interest earned during this year
	Contributions      decimal.Decimal // deposits made during this year
	GrowthPct          float64         // interest relative to the year-start balance, in percent
	CumulativeInterest decimal.Decimal
}

// ProjectionResult is the complete output of one projection. The input
// parameters ride along so renderers can echo them back.
type ProjectionResult struct {
	Principal        decimal.Decimal
	Rate             decimal.Decimal
	Years            int
	CompoundFreq     Frequency
	Contribution     decimal.Decimal
	ContributionFreq Frequency

	Breakdown          []YearSnapshot
	FinalBalance       decimal.Decimal
	TotalInterest      decimal.Decimal
	TotalContributions decimal.Decimal
	EffectiveAPY       float64  // fraction, 0.0723 means 7.23%
	DoublingTime       *float64 // years until the balance doubles, nil when rate <= 0
}

package calculator

import "math"

// EffectiveAPY returns the effective annual yield for a nominal rate
// compounded n times per year: (1 + rate/n)^n - 1. It depends only on
// the rate and frequency, never on balance, duration or contributions.
func EffectiveAPY(rate float64, n int) float64 {
	return math.Pow(1+rate/float64(n), float64(n)) - 1
}

// DoublingTime returns the years needed for a balance to double at the
// given rate, ln 2 / (n ln(1 + rate/n)), rounded to a tenth of a year.
// A zero or negative rate never doubles; nil is returned.
func DoublingTime(rate float64, n int) *float64 {
	if rate <= 0 {
		return nil
	}
	t := math.Log(2) / (float64(n) * math.Log(1+rate/float64(n)))
	t = math.Round(t*10) / 10
	return &t
}

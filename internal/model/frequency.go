package model

import "fmt"

// Frequency counts compounding or contribution periods per year.
type Frequency int

// Named frequencies accepted on the command line and in config files.
const (
	Annually     Frequency = 1
	Semiannually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
	Biweekly     Frequency = 26
	Weekly       Frequency = 52
	Daily        Frequency = 365
)

// String returns the canonical token for named frequencies and "Nx/yr"
// for anything else.
func (f Frequency) String() string {
	switch f {
	case Annually:
		return "annually"
	case Semiannually:
		return "semiannually"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	case Biweekly:
		return "biweekly"
	case Weekly:
		return "weekly"
	case Daily:
		return "daily"
	}
	return fmt.Sprintf("%dx/yr", int(f))
}

// Package cli parses and validates command-line arguments.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/0xdespot/compound/internal/config"
	"github.com/0xdespot/compound/internal/model"
	"github.com/0xdespot/compound/internal/money"
	"github.com/0xdespot/compound/internal/render"
	"github.com/0xdespot/compound/internal/version"

	"github.com/shopspring/decimal"
)

// one is the 100% threshold for the high-rate warning.
var one = decimal.NewFromInt(1)

// ErrUsage wraps flag-syntax errors the flag package has already reported
// to the flag set's output.
var ErrUsage = errors.New("usage")

// Options holds the parsed, validated input for one run.
type Options struct {
	Input    model.ProjectionInput
	Output   string
	NoChart  bool
	NoTable  bool
	Quiet    bool
	Currency string
	Version  bool

	// Warnings collects non-fatal notices for the caller to print.
	Warnings []string
}

const usageText = `compound - compound interest projections

Usage:
  compound <principal> [flags]

Examples:
  compound 10000                          project $10k at the default 7% for 10 years
  compound 10000 -r 8% -t 30              custom rate and duration
  compound 50000 -c 500                   with $500/month contributions
  compound 10000 -o json > results.json   machine-readable export

Flags:
`

// NewFlagSet returns the flag set used by ParseArgs, with usage wired to w.
func NewFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs parses argv against fs, with defaults seeded from cfg. The
// principal may appear before, between or after flags.
func ParseArgs(fs *flag.FlagSet, argv []string, cfg *config.Config) (Options, error) {
	opt := Options{Currency: cfg.Display.Currency}

	var (
		rateArg    string
		timeArg    int
		compArg    string
		contribArg string
		cfreqArg   string
		help       bool
	)
	fs.StringVar(&rateArg, "r", cfg.Defaults.Rate, "annual interest rate: 7%, 0.07 or .07")
	fs.StringVar(&rateArg, "rate", cfg.Defaults.Rate, "annual interest rate: 7%, 0.07 or .07")
	fs.IntVar(&timeArg, "t", cfg.Defaults.Years, "duration in years")
	fs.IntVar(&timeArg, "time", cfg.Defaults.Years, "duration in years")
	fs.StringVar(&compArg, "n", cfg.Defaults.Compound, "compounding frequency: daily, monthly, quarterly, annually or an integer")
	fs.StringVar(&compArg, "compound", cfg.Defaults.Compound, "compounding frequency: daily, monthly, quarterly, annually or an integer")
	fs.StringVar(&contribArg, "c", "0", "recurring contribution amount")
	fs.StringVar(&contribArg, "contribution", "0", "recurring contribution amount")
	fs.StringVar(&cfreqArg, "contribution-freq", cfg.Defaults.ContributionFrequency, "contribution frequency")
	fs.StringVar(&opt.Output, "o", cfg.Defaults.Output, "output format: rich, plain, json or csv")
	fs.StringVar(&opt.Output, "output", cfg.Defaults.Output, "output format: rich, plain, json or csv")
	fs.BoolVar(&opt.NoChart, "no-chart", false, "omit the growth sparkline")
	fs.BoolVar(&opt.NoTable, "no-table", false, "omit the year-by-year table")
	fs.BoolVar(&opt.Quiet, "q", false, "print only the final balance")
	fs.BoolVar(&opt.Quiet, "quiet", false, "print only the final balance")
	fs.BoolVar(&opt.Version, "V", false, "print version and exit")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help and exit")
	fs.BoolVar(&help, "help", false, "show this help and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, wrapParseErr(err)
	}

	// The flag package stops at the first non-flag argument. Pick it up
	// and keep parsing so "compound 10000 -r 8%" works.
	var positionals []string
	for args := fs.Args(); len(args) > 0; args = fs.Args() {
		positionals = append(positionals, args[0])
		if err := fs.Parse(args[1:]); err != nil {
			return opt, wrapParseErr(err)
		}
	}

	// The caller prints the usage text: stdout for -h, stderr on errors.
	if help {
		return opt, flag.ErrHelp
	}

	if opt.Version {
		return opt, nil
	}

	switch {
	case len(positionals) == 0:
		fmt.Fprintln(fs.Output(), "principal argument is required")
		fs.Usage()
		return opt, fmt.Errorf("%w: missing principal", ErrUsage)
	case len(positionals) > 1:
		return opt, fmt.Errorf("unexpected argument %q", positionals[1])
	}

	principal, err := money.ParseAmount(positionals[0])
	if err != nil {
		return opt, fmt.Errorf("invalid principal %q", positionals[0])
	}
	if !principal.IsPositive() {
		return opt, errors.New("principal must be positive")
	}

	rate, err := money.ParseRate(rateArg)
	if err != nil {
		return opt, err
	}
	if rate.GreaterThan(one) {
		opt.Warnings = append(opt.Warnings,
			fmt.Sprintf("rate %s seems high, did you mean %q as a percentage?",
				money.Percent(rate.InexactFloat64(), 1), rateArg))
	}

	if timeArg <= 0 {
		return opt, errors.New("time must be a positive number of years")
	}

	compFreq, err := money.ParseFrequency(compArg)
	if err != nil {
		return opt, err
	}

	contribution, err := money.ParseAmount(contribArg)
	if err != nil {
		return opt, fmt.Errorf("invalid contribution %q", contribArg)
	}
	if contribution.IsNegative() {
		return opt, errors.New("contribution cannot be negative")
	}

	contribFreq, err := money.ParseFrequency(cfreqArg)
	if err != nil {
		return opt, err
	}

	if _, err := render.Get(opt.Output); err != nil {
		return opt, err
	}

	opt.Input = model.ProjectionInput{
		Principal:        principal,
		Rate:             rate,
		Years:            timeArg,
		CompoundFreq:     compFreq,
		Contribution:     contribution,
		ContributionFreq: contribFreq,
	}
	return opt, nil
}

func wrapParseErr(err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// VersionLine is the -V output.
func VersionLine() string {
	return "compound version " + version.Version
}

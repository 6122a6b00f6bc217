package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/0xdespot/compound/internal/config"
	"github.com/0xdespot/compound/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("COMPOUND_RATE", "")
	t.Setenv("COMPOUND_OUTPUT", "")
	t.Setenv("COMPOUND_CURRENCY", "")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	return cfg
}

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("compound", io.Discard)
	return ParseArgs(fs, argv, testConfig(t))
}

func TestParseArgs_Defaults(t *testing.T) {
	opt, err := parse(t, "10000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := opt.Input
	if in.Principal.String() != "10000" {
		t.Errorf("expected principal 10000, got %s", in.Principal.String())
	}
	if in.Rate.String() != "0.07" {
		t.Errorf("expected rate 0.07, got %s", in.Rate.String())
	}
	if in.Years != 10 {
		t.Errorf("expected 10 years, got %d", in.Years)
	}
	if in.CompoundFreq != model.Monthly {
		t.Errorf("expected monthly compounding, got %s", in.CompoundFreq)
	}
	if !in.Contribution.IsZero() {
		t.Errorf("expected zero contribution, got %s", in.Contribution.String())
	}
	if in.ContributionFreq != model.Monthly {
		t.Errorf("expected monthly contribution frequency, got %s", in.ContributionFreq)
	}
	if opt.Output != "rich" {
		t.Errorf("expected rich output, got %q", opt.Output)
	}
	if opt.Currency != "$" {
		t.Errorf("expected $ currency, got %q", opt.Currency)
	}
	if opt.Quiet || opt.NoChart || opt.NoTable {
		t.Error("expected all toggles off by default")
	}
	if len(opt.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", opt.Warnings)
	}
}

func TestParseArgs_FlagsAfterPrincipal(t *testing.T) {
	opt, err := parse(t, "10000", "-r", "8%", "-t", "30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input.Rate.String() != "0.08" {
		t.Errorf("expected rate 0.08, got %s", opt.Input.Rate.String())
	}
	if opt.Input.Years != 30 {
		t.Errorf("expected 30 years, got %d", opt.Input.Years)
	}
}

func TestParseArgs_PrincipalBetweenFlags(t *testing.T) {
	opt, err := parse(t, "-r", "8%", "10000", "-t", "30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input.Principal.String() != "10000" {
		t.Errorf("expected principal 10000, got %s", opt.Input.Principal.String())
	}
	if opt.Input.Years != 30 {
		t.Errorf("expected 30 years, got %d", opt.Input.Years)
	}
}

func TestParseArgs_LongFlags(t *testing.T) {
	opt, err := parse(t, "25000", "--rate", "4.5%", "--time", "15",
		"--compound", "quarterly", "--contribution", "250", "--contribution-freq", "biweekly",
		"--output", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := opt.Input
	if in.Rate.String() != "0.045" {
		t.Errorf("expected rate 0.045, got %s", in.Rate.String())
	}
	if in.Years != 15 {
		t.Errorf("expected 15 years, got %d", in.Years)
	}
	if in.CompoundFreq != model.Quarterly {
		t.Errorf("expected quarterly, got %s", in.CompoundFreq)
	}
	if in.Contribution.String() != "250" {
		t.Errorf("expected contribution 250, got %s", in.Contribution.String())
	}
	if in.ContributionFreq != model.Biweekly {
		t.Errorf("expected biweekly, got %s", in.ContributionFreq)
	}
	if opt.Output != "json" {
		t.Errorf("expected json output, got %q", opt.Output)
	}
}

func TestParseArgs_FormattedAmounts(t *testing.T) {
	opt, err := parse(t, "$1,234.56", "-c", "$500")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input.Principal.String() != "1234.56" {
		t.Errorf("expected principal 1234.56, got %s", opt.Input.Principal.String())
	}
	if opt.Input.Contribution.String() != "500" {
		t.Errorf("expected contribution 500, got %s", opt.Input.Contribution.String())
	}
}

func TestParseArgs_Toggles(t *testing.T) {
	opt, err := parse(t, "10000", "-q", "--no-chart", "--no-table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opt.Quiet || !opt.NoChart || !opt.NoTable {
		t.Errorf("expected all toggles on, got %+v", opt)
	}
}

func TestParseArgs_HighRateWarning(t *testing.T) {
	opt, err := parse(t, "10000", "-r", "150")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input.Rate.String() != "1.5" {
		t.Errorf("expected rate 1.5, got %s", opt.Input.Rate.String())
	}
	if len(opt.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", opt.Warnings)
	}
	if !strings.Contains(opt.Warnings[0], "150") {
		t.Errorf("warning should echo the input: %q", opt.Warnings[0])
	}
}

func TestParseArgs_VersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "-V")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opt.Version {
		t.Error("expected version flag set")
	}

	opt, err = parse(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opt.Version {
		t.Error("expected version flag set")
	}
}

func TestParseArgs_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"zero principal", []string{"0"}},
		{"negative principal", []string{"--", "-500"}},
		{"malformed principal", []string{"abc"}},
		{"bad rate", []string{"10000", "-r", "lots"}},
		{"zero years", []string{"10000", "-t", "0"}},
		{"negative years", []string{"10000", "-t", "-5"}},
		{"bad compound frequency", []string{"10000", "-n", "fortnightly"}},
		{"negative contribution", []string{"10000", "-c=-50"}},
		{"bad contribution frequency", []string{"10000", "--contribution-freq", "sometimes"}},
		{"unknown output", []string{"10000", "-o", "xml"}},
		{"extra argument", []string{"10000", "20000"}},
	}
	for _, tt := range tests {
		if _, err := parse(t, tt.argv...); err == nil {
			t.Errorf("%s: expected error, got none", tt.name)
		} else if errors.Is(err, ErrUsage) {
			t.Errorf("%s: semantic error misclassified as usage error: %v", tt.name, err)
		}
	}
}

func TestParseArgs_UsageErrors(t *testing.T) {
	_, err := parse(t, "10000", "--frobnicate")
	if !errors.Is(err, ErrUsage) {
		t.Errorf("expected usage error for unknown flag, got %v", err)
	}

	_, err = parse(t)
	if !errors.Is(err, ErrUsage) {
		t.Errorf("expected usage error for missing principal, got %v", err)
	}
}

func TestParseArgs_HelpFlag(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFlagSet("compound", &buf)
	_, err := ParseArgs(fs, []string{"-h"}, testConfig(t))
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	// Usage printing is left to the caller.
	if buf.Len() != 0 {
		t.Errorf("expected no output from ParseArgs, got %q", buf.String())
	}

	_, err = parse(t, "10000", "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp for --help after principal, got %v", err)
	}
}

func TestParseArgs_ConfigSeedsDefaults(t *testing.T) {
	cfg := testConfig(t)
	cfg.Defaults.Rate = "5%"
	cfg.Defaults.Years = 25
	cfg.Defaults.Output = "csv"
	cfg.Display.Currency = "€"

	fs := NewFlagSet("compound", io.Discard)
	opt, err := ParseArgs(fs, []string{"10000"}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input.Rate.String() != "0.05" {
		t.Errorf("expected configured rate 0.05, got %s", opt.Input.Rate.String())
	}
	if opt.Input.Years != 25 {
		t.Errorf("expected configured years 25, got %d", opt.Input.Years)
	}
	if opt.Output != "csv" {
		t.Errorf("expected configured output csv, got %q", opt.Output)
	}
	if opt.Currency != "€" {
		t.Errorf("expected configured currency, got %q", opt.Currency)
	}

	// Explicit flags still beat config.
	fs = NewFlagSet("compound", io.Discard)
	opt, err = ParseArgs(fs, []string{"10000", "-r", "9%"}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Input.Rate.String() != "0.09" {
		t.Errorf("expected flag rate 0.09, got %s", opt.Input.Rate.String())
	}
}

func TestVersionLine(t *testing.T) {
	if got := VersionLine(); !strings.HasPrefix(got, "compound version ") {
		t.Errorf("unexpected version line: %q", got)
	}
}

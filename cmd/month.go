package cmd

import (
	"flag"

	"lifeassist/date"
)

// monthFlag declares the shared -m month flag on a subcommand's flag set.
func monthFlag(f *flag.FlagSet, target *string) {
	f.StringVar(target, "m", "", "Month to operate on, as YYYY-MM. Defaults to the current month.")
}

// parseMonthFlag resolves the -m flag value: empty means the unspecified
// month, which the engine maps to the current one.
func parseMonthFlag(s string) (date.Month, error) {
	if s == "" {
		return date.Month{}, nil
	}
	return date.ParseMonth(s)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"lifeassist/date"
)

type reportCmd struct {
	month string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate a monthly financial report" }
func (*reportCmd) Usage() string {
	return `lva report [-m <month>]

  Displays the financial report for the month: total expenses and a
  breakdown by category.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	monthFlag(f, &c.month)
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The report is the one operation where a month is mandatory in the
	// engine, so the flag defaults to the current month here.
	m := date.ThisMonth()
	if c.month != "" {
		var err error
		m, err = date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	return printMarkdownOutcome(newEngine().MonthlyReport(m))
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "summarize a month's expenses by category" }
func (*summaryCmd) Usage() string {
	return `lva summary [-m <month>]

  Displays the month's expenses aggregated by category, one total per
  category, sorted alphabetically.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	monthFlag(f, &c.month)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	return printMarkdownOutcome(newEngine().SummarizeExpenses(m))
}

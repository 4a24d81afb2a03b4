package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type listCmd struct {
	month string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the recorded expenses for a month" }
func (*listCmd) Usage() string {
	return `lva list [-m <month>]

  Displays all expenses recorded for the month as a table.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	monthFlag(f, &c.month)
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	return printMarkdownOutcome(newEngine().ListExpenses(m))
}

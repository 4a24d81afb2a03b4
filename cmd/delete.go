package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	month string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete expenses matching a description" }
func (*deleteCmd) Usage() string {
	return `lva delete [-m <month>] <description>

  Deletes every expense of the month whose description matches exactly.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	monthFlag(f, &c.month)
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: delete needs the description of the expense to remove")
		return subcommands.ExitUsageError
	}
	m, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	description := strings.Join(f.Args(), " ")
	return printOutcome(newEngine().DeleteExpense(description, m))
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"lifeassist"
)

type queryCmd struct {
	month string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run an ad-hoc operation on a month's expenses" }
func (*queryCmd) Usage() string {
	return `lva query [-m <month>] <operation> [key=value ...]

  Runs one of the table operations against the month's expense records.
  See 'lva topic operations' for the available operations and their
  parameters.

Usage Examples:
$ lva query filter_sum description_contains="camp de base"
$ lva query group_sum
$ lva query sort by=amount desc=true
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	monthFlag(f, &c.month)
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: query needs an operation, one of: %s\n", lifeassist.OperationNames())
		return subcommands.ExitUsageError
	}
	m, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	params, err := parseParams(f.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return printMarkdownOutcome(newEngine().RunTableOperation(m, f.Arg(0), params))
}

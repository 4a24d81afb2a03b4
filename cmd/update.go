package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type updateCmd struct {
	month string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update expenses matching a description" }
func (*updateCmd) Usage() string {
	return `lva update [-m <month>] <description> <amount> <category> <new-description>

  Replaces the amount, category and description of every expense of the
  month whose description matches exactly.

Usage Examples:
$ lva update "lunch" 12.30 Food "lunch at camp de base"
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	monthFlag(f, &c.month)
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "Error: update needs a description, an amount, a category and a new description")
		return subcommands.ExitUsageError
	}
	m, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	return printOutcome(newEngine().UpdateExpense(f.Arg(0), amount, f.Arg(2), f.Arg(3), m))
}

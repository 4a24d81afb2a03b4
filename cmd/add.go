package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense in the current month" }
func (*addCmd) Usage() string {
	return `lva add <amount> <category> <description>

  Records an expense dated today in the current month's records.

Usage Examples:
$ lva add 25.50 Food "lunch at camp de base"
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "Error: add needs an amount, a category and a description")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	category := f.Arg(1)
	description := strings.Join(f.Args()[2:], " ")

	return printOutcome(newEngine().AddExpense(amount, category, description))
}

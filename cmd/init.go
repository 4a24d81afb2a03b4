package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"lifeassist/date"
)

type initCmd struct {
	month string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the expense records file for a month" }
func (*initCmd) Usage() string {
	return `lva init [-m <month>]

  Creates the month's expense records file if it does not exist yet.
  Recording an expense creates the file on demand anyway, init is for
  preparing a month ahead of time.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	monthFlag(f, &c.month)
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := date.ThisMonth()
	if c.month != "" {
		var err error
		m, err = date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	return printOutcome(newEngine().CreateMonthlyFile(m))
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"lifeassist"
)

type frameCmd struct {
	file string
}

func (*frameCmd) Name() string     { return "frame" }
func (*frameCmd) Synopsis() string { return "run an ad-hoc operation on any CSV file" }
func (*frameCmd) Usage() string {
	return `lva frame -f <file.csv> <operation> [key=value ...]

  Loads a CSV file into a frame and runs a table operation against it.
  The same operations as 'lva query' apply, against arbitrary columns.

Usage Examples:
$ lva frame -f groceries.csv sum sum_column=price
$ lva frame -f groceries.csv head n=3
`
}

func (c *frameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path of the CSV file to query.")
}

func (c *frameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: frame needs a CSV file, use -f")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: frame needs an operation, one of: %s\n", lifeassist.OperationNames())
		return subcommands.ExitUsageError
	}
	params, err := parseParams(f.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := newEngine()
	msg := e.LoadFrame(c.file, "frame")
	if msg != fmt.Sprintf("Frame '%s' created from CSV at %s.", "frame", c.file) {
		// Loading reports problems (missing file, bad CSV, empty file) as
		// messages.
		fmt.Fprintln(os.Stderr, msg)
		return subcommands.ExitFailure
	}
	return printMarkdownOutcome(e.RunFrameOperation("frame", f.Arg(0), params))
}

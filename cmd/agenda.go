package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"lifeassist/renderer"
)

type agendaCmd struct {
	days int
	from string
	to   string
}

func (*agendaCmd) Name() string     { return "agenda" }
func (*agendaCmd) Synopsis() string { return "list the upcoming calendar events" }
func (*agendaCmd) Usage() string {
	return `lva agenda [-days <n>] [-from <time> -to <time>]

  Displays the calendar events of the coming days, ordered by start time.
  An explicit -from/-to range (RFC 3339) overrides -days.
`
}

func (c *agendaCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Number of days to look ahead.")
	f.StringVar(&c.from, "from", "", "Start of an explicit range, RFC 3339.")
	f.StringVar(&c.to, "to", "", "End of an explicit range, RFC 3339.")
}

func (c *agendaCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from := time.Now()
	to := from.AddDate(0, 0, c.days)
	if c.from != "" || c.to != "" {
		var err error
		if from, err = time.Parse(time.RFC3339, c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
		if to, err = time.Parse(time.RFC3339, c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	client, err := newCalendar(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to the calendar: %v\nRun 'lva login' first.\n", err)
		return subcommands.ExitFailure
	}
	events, err := client.ListEvents(ctx, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing events: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.EventsMarkdown(events))
	return subcommands.ExitSuccess
}

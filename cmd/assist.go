package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"lifeassist/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `lva assist [<initial prompt>]

  Starts an interactive session with the assistant. A Bookkeeper expert
  handles expense tracking and a Secretary expert handles the calendar;
  the facilitator delegates to them. Requires Gemini API credentials in
  the environment. The Secretary is left out when the calendar is not
  authorized yet.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	experts := []*agent.Expert{agent.NewBookkeeper(newEngine())}
	if cal, err := newCalendar(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: calendar unavailable (%v), the Secretary is out today. Run 'lva login' to enable it.\n", err)
	} else {
		experts = append(experts, agent.NewSecretary(cal))
	}

	a := agent.New(os.Stdout, os.Stdin, experts...)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

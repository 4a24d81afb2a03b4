package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/google/subcommands"
)

// printMarkdown renders markdown for the terminal. On any rendering problem
// it falls back to printing the raw markdown, which is still readable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// printOutcome prints an engine message. The engine reports failures as
// messages starting with "Error"; those go to stderr with a failing status.
func printOutcome(msg string) subcommands.ExitStatus {
	if strings.HasPrefix(msg, "Error") {
		fmt.Fprintln(os.Stderr, msg)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}

// printMarkdownOutcome is printOutcome for messages that may carry markdown.
func printMarkdownOutcome(msg string) subcommands.ExitStatus {
	if strings.HasPrefix(msg, "Error") {
		fmt.Fprintln(os.Stderr, msg)
		return subcommands.ExitFailure
	}
	printMarkdown(msg)
	return subcommands.ExitSuccess
}

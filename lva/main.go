// Command lva is the personal life assistant CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"

	"lifeassist/cmd"
)

func main() {
	// Settings may come from a .env file; missing is fine.
	_ = godotenv.Load()

	// Shell completion: a no-op unless invoked by the completion machinery.
	subs := make(map[string]*complete.Command, len(cmd.Names()))
	for _, name := range cmd.Names() {
		subs[name] = &complete.Command{}
	}
	completer := &complete.Command{Sub: subs}
	completer.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

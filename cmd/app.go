// Package cmd implements the CLI application to manage a personal assistant:
// an expense ledger, a Google Calendar, and an AI assistant on top of both.
package cmd

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"lifeassist"
	"lifeassist/calendar"
	"lifeassist/tracker"
)

// Environment variables honored as fallbacks for the global flags. They are
// typically set in a .env file loaded by the main package.
const (
	EnvDir         = "LVA_DIR"
	EnvCurrency    = "LVA_CURRENCY"
	EnvCredentials = "LVA_CREDENTIALS_FILE"
	EnvToken       = "LVA_TOKEN_FILE"
	EnvCalendar    = "LVA_CALENDAR_ID"
	EnvTimeZone    = "LVA_TIMEZONE"
)

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables. Defaults are empty so that values from a .env file
// loaded after flag definition still apply; resolution happens at Execute
// time through the accessors below.
var (
	dirFlag         = flag.String("dir", "", "Directory holding the monthly expense files (default $LVA_DIR or 'data/expenses')")
	currencyFlag    = flag.String("currency", "", "ISO 4217 currency code used in reports (default $LVA_CURRENCY or 'EUR')")
	credentialsFlag = flag.String("credentials", "", "Google OAuth client credentials file (default $LVA_CREDENTIALS_FILE or 'credentials.json')")
	tokenFlag       = flag.String("token", "", "Google OAuth token file (default $LVA_TOKEN_FILE or 'token.json')")
	calendarFlag    = flag.String("calendar", "", "Google calendar ID (default $LVA_CALENDAR_ID or 'primary')")
	timezoneFlag    = flag.String("timezone", "", "IANA time zone for calendar events (default $LVA_TIMEZONE or 'Europe/Amsterdam')")
	verbose         = flag.Bool("v", false, "Enable verbose logging")
)

// orEnv resolves a setting: explicit flag first, then environment, then the
// built-in fallback.
func orEnv(flagValue, envKey, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

func storageDir() string      { return orEnv(*dirFlag, EnvDir, "data/expenses") }
func currency() string        { return orEnv(*currencyFlag, EnvCurrency, "EUR") }
func credentialsFile() string { return orEnv(*credentialsFlag, EnvCredentials, "credentials.json") }
func tokenFile() string       { return orEnv(*tokenFlag, EnvToken, "token.json") }
func calendarID() string      { return orEnv(*calendarFlag, EnvCalendar, "primary") }
func timeZone() string        { return orEnv(*timezoneFlag, EnvTimeZone, "Europe/Amsterdam") }

func logger() *slog.Logger {
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newEngine creates the expense engine from the global settings.
func newEngine() *tracker.Engine {
	return tracker.New(tracker.Config{
		Dir:        storageDir(),
		Categories: lifeassist.DefaultCategories,
		Currency:   currency(),
		Logger:     logger(),
	})
}

// newCalendar creates the calendar client from the global settings. It fails
// when no valid OAuth token is stored yet; the login command creates one.
func newCalendar(ctx context.Context) (*calendar.Client, error) {
	return calendar.New(ctx, calendar.Config{
		CredentialsFile: credentialsFile(),
		TokenFile:       tokenFile(),
		CalendarID:      calendarID(),
		TimeZone:        timeZone(),
		Logger:          logger(),
	})
}

// Commands lists every subcommand with its help group. A main package
// registers them on a commander and uses the names for shell completion.
var Commands = []struct {
	Cmd   subcommands.Command
	Group string
}{
	{&addCmd{}, "expenses"},
	{&listCmd{}, "expenses"},
	{&summaryCmd{}, "expenses"},
	{&deleteCmd{}, "expenses"},
	{&updateCmd{}, "expenses"},
	{&reportCmd{}, "expenses"},
	{&initCmd{}, "expenses"},
	{&queryCmd{}, "queries"},
	{&frameCmd{}, "queries"},
	{&agendaCmd{}, "calendar"},
	{&loginCmd{}, "calendar"},
	{&topicCmd{}, "help"},
	{&assistCmd{}, "assistant"},
}

// Register the subcommands on the commander.
func Register(c *subcommands.Commander) {
	for _, entry := range Commands {
		c.Register(entry.Cmd, entry.Group)
	}
}

// Names returns the names of all subcommands, for shell completion.
func Names() []string {
	names := make([]string, 0, len(Commands))
	for _, entry := range Commands {
		names = append(names, entry.Cmd.Name())
	}
	return names
}

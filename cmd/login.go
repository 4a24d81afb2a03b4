package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/oauth2"

	"lifeassist/calendar"
)

type loginCmd struct {
	port string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authorize calendar access and store the token" }
func (*loginCmd) Usage() string {
	return `lva login [-port <port>]

  Runs the installed-app OAuth flow for Google Calendar: opens a local
  callback server, prints the authorization URL, and saves the obtained
  token next to the credentials. The OAuth client must list
  http://localhost:<port>/callback among its authorized redirect URIs.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.port, "port", "8085", "Local port for the OAuth callback server.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := calendar.OAuthConfig(credentialsFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading OAuth config: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.RedirectURL = "http://localhost:" + c.port + "/callback"

	codeCh := make(chan string, 1)
	mux := http.NewServeMux()
	srv := &http.Server{Addr: ":" + c.port, Handler: mux}
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if errStr := r.URL.Query().Get("error"); errStr != "" {
			http.Error(w, "OAuth error: "+errStr, http.StatusBadRequest)
			return
		}
		fmt.Fprintln(w, "You may close this window and return to the terminal.")
		codeCh <- r.URL.Query().Get("code")
		go func() { time.Sleep(500 * time.Millisecond); _ = srv.Close() }()
	})
	go func() { _ = srv.ListenAndServe() }()

	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open this URL to authorize:\n%s\n", url)

	select {
	case code := <-codeCh:
		tok, err := cfg.Exchange(ctx, code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exchanging the authorization code: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := calendar.WriteToken(tokenFile(), tok); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving the token: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved token to %s\n", tokenFile())
		return subcommands.ExitSuccess
	case <-time.After(5 * time.Minute):
		fmt.Fprintln(os.Stderr, "Error: authorization timed out")
		return subcommands.ExitFailure
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "Error: interrupted")
		return subcommands.ExitFailure
	}
}

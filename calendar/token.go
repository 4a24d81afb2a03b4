package calendar

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

// OAuthConfig loads the installed-app OAuth config from the client secret
// file, scoped to calendar access.
func OAuthConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("could not read credentials file: %w", err)
	}
	cfg, err := google.ConfigFromJSON(b, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("could not parse OAuth client config: %w", err)
	}
	return cfg, nil
}

// ReadToken loads a previously saved user token.
func ReadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var tok oauth2.Token
	if err := json.NewDecoder(f).Decode(&tok); err != nil {
		return nil, fmt.Errorf("could not decode token file %q: %w", path, err)
	}
	return &tok, nil
}

// WriteToken saves the user token, readable by the owner only.
func WriteToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("could not open token file %q: %w", path, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("could not write token: %w", err)
	}
	return nil
}

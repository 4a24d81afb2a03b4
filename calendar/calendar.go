// Package calendar is the Google Calendar collaborator the secretary
// assistant drives. It talks to the external REST API with OAuth2
// credentials saved to a local token file, and stays fully decoupled from
// the expense ledger.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Event is the subset of a calendar event the assistant works with.
type Event struct {
	ID          string
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
}

// Config carries the settings of a calendar client.
type Config struct {
	// CredentialsFile is the OAuth client secret JSON downloaded from the
	// Google console.
	CredentialsFile string
	// TokenFile is where the login flow saved the user token.
	TokenFile string
	// CalendarID defaults to "primary".
	CalendarID string
	// TimeZone applies to event start and end times. Defaults to
	// Europe/Amsterdam.
	TimeZone string
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client wraps the Calendar v3 service for one calendar.
type Client struct {
	svc        *gcal.Service
	calendarID string
	timeZone   string
	log        *slog.Logger
}

// New builds a client from a previously saved token, see the login command.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = "Europe/Amsterdam"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	oc, err := OAuthConfig(cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}
	tok, err := ReadToken(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("no saved token, run the login command first: %w", err)
	}
	svc, err := gcal.NewService(ctx, option.WithTokenSource(oc.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("could not build calendar service: %w", err)
	}
	return &Client{svc: svc, calendarID: cfg.CalendarID, timeZone: cfg.TimeZone, log: cfg.Logger}, nil
}

// AddEvent inserts the event and returns its HTML link.
func (c *Client) AddEvent(ctx context.Context, ev Event) (string, error) {
	c.log.Info("adding event", "summary", ev.Summary, "start", ev.Start)
	created, err := c.svc.Events.Insert(c.calendarID, c.toGoogle(ev)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("could not create event: %w", err)
	}
	return created.HtmlLink, nil
}

// ListEvents returns the events between from and to, ordered by start time.
// IDs are included so events can be updated or deleted afterwards.
func (c *Client) ListEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	c.log.Info("listing events", "from", from, "to", to)
	res, err := c.svc.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("could not list events: %w", err)
	}
	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, fromGoogle(item))
	}
	return events, nil
}

// UpdateEvent overwrites the event with the given ID.
func (c *Client) UpdateEvent(ctx context.Context, id string, ev Event) error {
	c.log.Info("updating event", "id", id)
	if _, err := c.svc.Events.Update(c.calendarID, id, c.toGoogle(ev)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("could not update event %s: %w", id, err)
	}
	return nil
}

// DeleteEvent removes the event with the given ID.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	c.log.Info("deleting event", "id", id)
	if err := c.svc.Events.Delete(c.calendarID, id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("could not delete event %s: %w", id, err)
	}
	return nil
}

func (c *Client) toGoogle(ev Event) *gcal.Event {
	return &gcal.Event{
		Summary:     ev.Summary,
		Location:    ev.Location,
		Description: ev.Description,
		Start:       &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: c.timeZone},
		End:         &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339), TimeZone: c.timeZone},
	}
}

func fromGoogle(item *gcal.Event) Event {
	ev := Event{ID: item.Id, Summary: item.Summary, Location: item.Location, Description: item.Description}
	if item.Start != nil {
		ev.Start = parseWhen(item.Start)
	}
	if item.End != nil {
		ev.End = parseWhen(item.End)
	}
	return ev
}

// parseWhen handles both timed and all-day events.
func parseWhen(dt *gcal.EventDateTime) time.Time {
	if dt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
			return t
		}
	}
	if dt.Date != "" {
		if t, err := time.Parse("2006-01-02", dt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

package agent

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"lifeassist/calendar"
	"lifeassist/renderer"
)

// NewSecretary creates the expert in charge of the user's Google Calendar.
func NewSecretary(c *calendar.Client) *Expert {
	lib := []Function{
		addEvent(c),
		listEvents(c),
		updateEvent(c),
		deleteEvent(c),
		todaysDate,
	}

	return &Expert{
		Name: "Secretary",
		Description: `The Secretary manages the user's Google Calendar. It can add new
		events, list upcoming events, update existing events, and delete events.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a secretary assistant responsible for managing calendar-related tasks.
			You can add new events, list upcoming events, update existing events, and
			delete events from the user's Google Calendar.

			Ensure all events are recorded accurately with the correct date, time, and
			details. When asked to list or manage events, provide detailed information
			and confirm actions taken. Times are expressed in RFC 3339, use the
			todays_date tool to resolve relative dates first.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func timeArg(args map[string]any, key string) (time.Time, error) {
	s, err := strArg(args, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("argument %q must be an RFC 3339 time: %w", key, err)
	}
	return t, nil
}

func eventFromArgs(args map[string]any) (calendar.Event, error) {
	var ev calendar.Event
	var err error
	if ev.Summary, err = strArg(args, "summary"); err != nil {
		return ev, err
	}
	if ev.Start, err = timeArg(args, "start"); err != nil {
		return ev, err
	}
	if ev.End, err = timeArg(args, "end"); err != nil {
		return ev, err
	}
	if ev.Location, err = optStrArg(args, "location"); err != nil {
		return ev, err
	}
	if ev.Description, err = optStrArg(args, "description"); err != nil {
		return ev, err
	}
	return ev, nil
}

func eventProperties() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"summary":     {Type: genai.TypeString, Description: "The event title."},
		"start":       {Type: genai.TypeString, Description: "The event start time in RFC 3339 format."},
		"end":         {Type: genai.TypeString, Description: "The event end time in RFC 3339 format."},
		"location":    {Type: genai.TypeString, Description: "The event location."},
		"description": {Type: genai.TypeString, Description: "Free-text details about the event."},
	}
}

func addEvent(c *calendar.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "add_event",
			Description: "Adds a new event to the user's calendar.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: eventProperties(),
				Required:   []string{"summary", "start", "end"},
			},
			Response: outcomeSchema(),
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ev, err := eventFromArgs(args)
			if err != nil {
				return failure(id, "add_event", err)
			}
			link, err := c.AddEvent(ctx, ev)
			if err != nil {
				return failure(id, "add_event", err)
			}
			return output(id, "add_event", fmt.Sprintf("Event created: %s", link))
		},
	}
}

func listEvents(c *calendar.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_events",
			Description: "Lists the calendar events between two times, ordered by start time.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"start_time": {Type: genai.TypeString, Description: "Lower bound in RFC 3339 format."},
					"end_time":   {Type: genai.TypeString, Description: "Upper bound in RFC 3339 format."},
				},
				Required: []string{"start_time", "end_time"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the events, with their IDs.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			from, err := timeArg(args, "start_time")
			if err != nil {
				return failure(id, "list_events", err)
			}
			to, err := timeArg(args, "end_time")
			if err != nil {
				return failure(id, "list_events", err)
			}
			events, err := c.ListEvents(ctx, from, to)
			if err != nil {
				return failure(id, "list_events", err)
			}
			return output(id, "list_events", renderer.EventsMarkdown(events))
		},
	}
}

func updateEvent(c *calendar.Client) *Func {
	properties := eventProperties()
	properties["event_id"] = &genai.Schema{Type: genai.TypeString, Description: "The ID of the event to update."}

	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "update_event",
			Description: "Replaces an existing calendar event's details.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   []string{"event_id", "summary", "start", "end"},
			},
			Response: outcomeSchema(),
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			eventID, err := strArg(args, "event_id")
			if err != nil {
				return failure(id, "update_event", err)
			}
			ev, err := eventFromArgs(args)
			if err != nil {
				return failure(id, "update_event", err)
			}
			if err := c.UpdateEvent(ctx, eventID, ev); err != nil {
				return failure(id, "update_event", err)
			}
			return output(id, "update_event", fmt.Sprintf("Event with ID %s has been updated.", eventID))
		},
	}
}

func deleteEvent(c *calendar.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "delete_event",
			Description: "Deletes an event from the user's calendar.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"event_id": {Type: genai.TypeString, Description: "The ID of the event to delete."},
				},
				Required: []string{"event_id"},
			},
			Response: outcomeSchema(),
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			eventID, err := strArg(args, "event_id")
			if err != nil {
				return failure(id, "delete_event", err)
			}
			if err := c.DeleteEvent(ctx, eventID); err != nil {
				return failure(id, "delete_event", err)
			}
			return output(id, "delete_event", fmt.Sprintf("Event with ID %s has been deleted.", eventID))
		},
	}
}

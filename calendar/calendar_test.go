package calendar

import (
	"testing"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

func TestToGoogle(t *testing.T) {
	c := &Client{timeZone: "Europe/Amsterdam"}
	ev := Event{
		Summary:     "Dentist",
		Location:    "Main street 1",
		Description: "checkup",
		Start:       time.Date(2023, 4, 12, 9, 0, 0, 0, time.UTC),
		End:         time.Date(2023, 4, 12, 9, 30, 0, 0, time.UTC),
	}
	got := c.toGoogle(ev)
	if got.Summary != "Dentist" || got.Location != "Main street 1" {
		t.Errorf("toGoogle dropped fields: %+v", got)
	}
	if got.Start.DateTime != "2023-04-12T09:00:00Z" {
		t.Errorf("start = %q; want RFC 3339", got.Start.DateTime)
	}
	if got.Start.TimeZone != "Europe/Amsterdam" || got.End.TimeZone != "Europe/Amsterdam" {
		t.Errorf("time zone not applied: %+v %+v", got.Start, got.End)
	}
}

func TestFromGoogleTimed(t *testing.T) {
	item := &gcal.Event{
		Id:      "abc123",
		Summary: "Dentist",
		Start:   &gcal.EventDateTime{DateTime: "2023-04-12T09:00:00Z"},
		End:     &gcal.EventDateTime{DateTime: "2023-04-12T09:30:00Z"},
	}
	ev := fromGoogle(item)
	if ev.ID != "abc123" {
		t.Errorf("ID = %q; want abc123", ev.ID)
	}
	want := time.Date(2023, 4, 12, 9, 0, 0, 0, time.UTC)
	if !ev.Start.Equal(want) {
		t.Errorf("Start = %v; want %v", ev.Start, want)
	}
}

func TestFromGoogleAllDay(t *testing.T) {
	item := &gcal.Event{
		Summary: "Holiday",
		Start:   &gcal.EventDateTime{Date: "2023-04-12"},
		End:     &gcal.EventDateTime{Date: "2023-04-13"},
	}
	ev := fromGoogle(item)
	want := time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC)
	if !ev.Start.Equal(want) {
		t.Errorf("all-day Start = %v; want %v", ev.Start, want)
	}
}

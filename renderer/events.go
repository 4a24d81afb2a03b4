package renderer

import (
	"bytes"
	"time"

	md "github.com/nao1215/markdown"

	"lifeassist/calendar"
)

// EventsMarkdown renders calendar events as a table, IDs included so they
// can be referenced by update and delete.
func EventsMarkdown(events []calendar.Event) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Upcoming Events")
	if len(events) == 0 {
		doc.PlainText("No events in this period.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Start", "End", "Summary", "Location", "ID"}}
	for _, ev := range events {
		table.Rows = append(table.Rows, []string{
			ev.Start.Format(time.RFC3339),
			ev.End.Format(time.RFC3339),
			ev.Summary,
			ev.Location,
			ev.ID,
		})
	}
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"lifeassist"
	"lifeassist/calendar"
	"lifeassist/date"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal constant %q: %v", s, err)
	}
	return d
}

func TestExpensesMarkdown(t *testing.T) {
	s := lifeassist.NewStore()
	s.Append(lifeassist.Record{
		Date:        time.Date(2023, 4, 12, 10, 30, 0, 0, time.UTC),
		Amount:      dec(t, "25.5"),
		Category:    "Food",
		Description: "Lunch",
	})
	got := ExpensesMarkdown(date.NewMonth(2023, time.April), s)

	for _, want := range []string{"Expenses for 2023-04", "2023-04-12T10:30:00Z", "25.5", "Food", "Lunch"} {
		if !strings.Contains(got, want) {
			t.Errorf("ExpensesMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	rows := []lifeassist.CategoryTotal{
		{Category: "Food", Total: dec(t, "25.5")},
		{Category: "Transportation", Total: dec(t, "10")},
	}
	got := SummaryMarkdown(date.NewMonth(2023, time.April), rows)

	food := strings.Index(got, "Food")
	transport := strings.Index(got, "Transportation")
	if food < 0 || transport < 0 || food > transport {
		t.Errorf("SummaryMarkdown rows out of order:\n%s", got)
	}
}

func TestReportMarkdown(t *testing.T) {
	rows := []lifeassist.CategoryTotal{{Category: "Food", Total: dec(t, "35.5")}}
	got := ReportMarkdown(date.NewMonth(2023, time.April), lifeassist.M(dec(t, "35.5"), "EUR"), rows, "EUR")

	for _, want := range []string{"Financial Report for 2023-04", "Total Expenses: €35.50", "By Category", "Food"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestTableMarkdown(t *testing.T) {
	got := TableMarkdown(&lifeassist.Table{
		Columns: []string{"category", "amount"},
		Rows:    [][]string{{"Food", "30"}},
	})
	for _, want := range []string{"category", "amount", "Food", "30"} {
		if !strings.Contains(got, want) {
			t.Errorf("TableMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestEventsMarkdown(t *testing.T) {
	got := EventsMarkdown([]calendar.Event{{
		ID:      "abc123",
		Summary: "Dentist",
		Start:   time.Date(2023, 4, 12, 9, 0, 0, 0, time.UTC),
		End:     time.Date(2023, 4, 12, 9, 30, 0, 0, time.UTC),
	}})
	for _, want := range []string{"Dentist", "abc123", "2023-04-12T09:00:00Z"} {
		if !strings.Contains(got, want) {
			t.Errorf("EventsMarkdown missing %q in:\n%s", want, got)
		}
	}

	if empty := EventsMarkdown(nil); !strings.Contains(empty, "No events") {
		t.Errorf("EventsMarkdown(nil) = %q; want the no-events sentinel", empty)
	}
}

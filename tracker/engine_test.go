package tracker

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"lifeassist"
	"lifeassist/date"
)

var testClock = time.Date(2023, 4, 12, 10, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	dir := t.TempDir()
	e := New(Config{
		Dir:      dir,
		Currency: "EUR",
		Now:      func() time.Time { return testClock },
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	})
	return e, dir
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal constant %q: %v", s, err)
	}
	return d
}

func storeBytes(t *testing.T, dir string, m date.Month) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, "expenses_"+m.String()+".csv"))
	if err != nil {
		t.Fatalf("could not read store file: %v", err)
	}
	return b
}

func TestAddThenList(t *testing.T) {
	e, _ := newTestEngine(t)

	out := e.AddExpense(dec(t, "25.50"), "Food", "Lunch")
	if out != "Expense of 25.5 in category 'Food' added." {
		t.Errorf("AddExpense = %q", out)
	}

	list := e.ListExpenses(date.Month{})
	for _, want := range []string{"Lunch", "Food", "25.5", "2023-04-12T10:30:00Z"} {
		if !strings.Contains(list, want) {
			t.Errorf("ListExpenses missing %q in:\n%s", want, list)
		}
	}
}

func TestListEmptyMonth(t *testing.T) {
	e, _ := newTestEngine(t)
	if got := e.ListExpenses(date.Month{}); got != noExpenses {
		t.Errorf("ListExpenses on empty month = %q; want the sentinel", got)
	}
	if got := e.SummarizeExpenses(date.Month{}); got != noExpenses {
		t.Errorf("SummarizeExpenses on empty month = %q; want the sentinel", got)
	}
}

func TestAddExpenseRejectsUnknownCategory(t *testing.T) {
	e, dir := newTestEngine(t)

	out := e.AddExpense(dec(t, "10"), "Groceries", "Veggies")
	if !strings.Contains(out, "Invalid category 'Groceries'") {
		t.Errorf("AddExpense = %q; want an invalid-category message", out)
	}
	if !strings.Contains(out, "Food, Rent, Transportation, Clothing, Material, Paypal, Event, Sports") {
		t.Errorf("AddExpense = %q; must name all valid categories", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "expenses_2023-04.csv")); err == nil {
		t.Error("rejected add must not create the store file")
	}
}

func TestUpdateInvalidCategoryMutatesNothing(t *testing.T) {
	e, dir := newTestEngine(t)
	e.AddExpense(dec(t, "25.50"), "Food", "Lunch")
	before := storeBytes(t, dir, date.MustParseMonth("2023-04"))

	out := e.UpdateExpense("Lunch", dec(t, "99"), "Groceries", "Dinner", date.Month{})
	if !strings.Contains(out, "Invalid category 'Groceries'") {
		t.Errorf("UpdateExpense = %q; want an invalid-category message", out)
	}

	after := storeBytes(t, dir, date.MustParseMonth("2023-04"))
	if string(before) != string(after) {
		t.Error("store file changed after a rejected update")
	}
}

func TestUpdateAllMatches(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddExpense(dec(t, "3"), "Food", "Coffee")
	e.AddExpense(dec(t, "3.50"), "Food", "Coffee")
	e.AddExpense(dec(t, "10"), "Transportation", "Bus")

	out := e.UpdateExpense("Coffee", dec(t, "4"), "Event", "Team coffee", date.Month{})
	if out != "Expense with description 'Coffee' has been updated." {
		t.Errorf("UpdateExpense = %q", out)
	}

	list := e.ListExpenses(date.Month{})
	if strings.Contains(list, "Coffee\n") || strings.Count(list, "Team coffee") != 2 {
		t.Errorf("both matching records must be updated:\n%s", list)
	}
	if !strings.Contains(list, "Bus") {
		t.Errorf("unrelated record must survive the update:\n%s", list)
	}
}

func TestDeleteNoMatchLeavesStoreUntouched(t *testing.T) {
	e, dir := newTestEngine(t)
	e.AddExpense(dec(t, "25.50"), "Food", "Lunch")
	before := storeBytes(t, dir, date.MustParseMonth("2023-04"))

	out := e.DeleteExpense("Dinner", date.Month{})
	if out != "Expense with description 'Dinner' has been deleted." {
		t.Errorf("DeleteExpense = %q; the engine reports success even with no match", out)
	}

	after := storeBytes(t, dir, date.MustParseMonth("2023-04"))
	if string(before) != string(after) {
		t.Error("store file changed after a no-match delete")
	}
}

func TestDeleteRemovesAllMatches(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddExpense(dec(t, "3"), "Food", "Coffee")
	e.AddExpense(dec(t, "3.50"), "Food", "Coffee")
	e.AddExpense(dec(t, "10"), "Transportation", "Bus")

	e.DeleteExpense("Coffee", date.Month{})

	list := e.ListExpenses(date.Month{})
	if strings.Contains(list, "Coffee") {
		t.Errorf("all matching records must be removed:\n%s", list)
	}
	if !strings.Contains(list, "Bus") {
		t.Errorf("unrelated record must survive the delete:\n%s", list)
	}
}

func TestSummarizeScenario(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddExpense(dec(t, "25.50"), "Food", "Lunch")
	e.AddExpense(dec(t, "10"), "Transportation", "Bus")

	out := e.SummarizeExpenses(date.Month{})
	food := strings.Index(out, "Food")
	transport := strings.Index(out, "Transportation")
	if food < 0 || transport < 0 || food > transport {
		t.Errorf("summary must list Food before Transportation:\n%s", out)
	}
	for _, want := range []string{"25.5", "10"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing total %q in:\n%s", want, out)
		}
	}
}

func TestCreateMonthlyFileIdempotent(t *testing.T) {
	e, dir := newTestEngine(t)
	m := date.MustParseMonth("2023-04")

	first := e.CreateMonthlyFile(m)
	if first != "Expense file for 2023-04 created successfully." {
		t.Errorf("first CreateMonthlyFile = %q", first)
	}
	before := storeBytes(t, dir, m)

	second := e.CreateMonthlyFile(m)
	if second != "Expense file for 2023-04 already exists." {
		t.Errorf("second CreateMonthlyFile = %q", second)
	}
	after := storeBytes(t, dir, m)
	if string(before) != string(after) {
		t.Error("second CreateMonthlyFile changed the file")
	}
}

func TestCreateMonthlyFileRequiresMonth(t *testing.T) {
	e, _ := newTestEngine(t)
	if got := e.CreateMonthlyFile(date.Month{}); !strings.HasPrefix(got, "Error:") {
		t.Errorf("CreateMonthlyFile with no month = %q; want an error string", got)
	}
}

func TestMonthlyReport(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddExpense(dec(t, "25.50"), "Food", "Lunch")
	e.AddExpense(dec(t, "10"), "Transportation", "Bus")

	out := e.MonthlyReport(date.MustParseMonth("2023-04"))
	for _, want := range []string{"Financial Report for 2023-04", "Total Expenses: €35.50", "Food", "Transportation"} {
		if !strings.Contains(out, want) {
			t.Errorf("MonthlyReport missing %q in:\n%s", want, out)
		}
	}
}

func TestMonthlyReportMissingPeriod(t *testing.T) {
	e, dir := newTestEngine(t)

	out := e.MonthlyReport(date.MustParseMonth("2099-01"))
	if out != "No expenses recorded for 2099-01." {
		t.Errorf("MonthlyReport = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "expenses_2099-01.csv")); err == nil {
		t.Error("reporting on a missing period must not create its file")
	}
}

func TestMonthlyReportRequiresMonth(t *testing.T) {
	e, _ := newTestEngine(t)
	if got := e.MonthlyReport(date.Month{}); !strings.HasPrefix(got, "Error:") {
		t.Errorf("MonthlyReport with no month = %q; want an error string", got)
	}
}

func TestRunTableOperationFilterSum(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddExpense(dec(t, "25.50"), "Food", "camp de base tent")
	e.AddExpense(dec(t, "10"), "Transportation", "Bus")

	m := date.MustParseMonth("2023-04")
	out := e.RunTableOperation(m, "filter_sum", lifeassist.Params{"description_contains": "camp de base"})
	if out != "25.5" {
		t.Errorf("filter_sum = %q; want 25.5", out)
	}
}

func TestRunTableOperationDefaultsToCurrentMonth(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddExpense(dec(t, "25.50"), "Food", "camp de base tent")

	out := e.RunTableOperation(date.Month{}, "count", lifeassist.Params{})
	if out != "1" {
		t.Errorf("count on the default month = %q; want 1", out)
	}
}

func TestRunTableOperationUnknown(t *testing.T) {
	e, _ := newTestEngine(t)
	m := date.MustParseMonth("2023-04")
	out := e.RunTableOperation(m, "drop", lifeassist.Params{})
	if !strings.HasPrefix(out, "Error running operation:") {
		t.Errorf("unknown operation = %q; want an operation error string", out)
	}
}

func TestLoadFrame(t *testing.T) {
	e, _ := newTestEngine(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "extra.csv")
	content := "name,price\npen,1.20\nbook,9.80\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := e.LoadFrame(path, "extra")
	if out != "Frame 'extra' created from CSV at "+path+"." {
		t.Errorf("LoadFrame = %q", out)
	}
	if got := e.RunFrameOperation("extra", "count", lifeassist.Params{}); got != "2" {
		t.Errorf("count on frame = %q; want 2", got)
	}
	if got := e.RunFrameOperation("extra", "sum", lifeassist.Params{"sum_column": "price"}); got != "11" {
		t.Errorf("sum on frame = %q; want 11", got)
	}
}

func TestLoadFrameEmptyOrMissing(t *testing.T) {
	e, _ := newTestEngine(t)
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte("name,price\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := e.LoadFrame(empty, "empty"); got != "CSV file at "+empty+" is empty." {
		t.Errorf("LoadFrame on header-only CSV = %q", got)
	}

	if got := e.LoadFrame(filepath.Join(dir, "missing.csv"), "gone"); !strings.HasPrefix(got, "Error:") {
		t.Errorf("LoadFrame on a missing file = %q; want an error string", got)
	}

	if got := e.RunFrameOperation("gone", "count", lifeassist.Params{}); !strings.HasPrefix(got, "Error:") {
		t.Errorf("RunFrameOperation on unknown frame = %q; want an error string", got)
	}
}

func TestSaveLoadRoundTripKeepsOrder(t *testing.T) {
	e, _ := newTestEngine(t)
	e.AddExpense(dec(t, "1"), "Food", "first")
	e.AddExpense(dec(t, "2"), "Rent", "second")
	e.AddExpense(dec(t, "3"), "Sports", "third")

	store, err := e.load(date.MustParseMonth("2023-04"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(store.Records) != len(want) {
		t.Fatalf("loaded %d records; want %d", len(store.Records), len(want))
	}
	for i, w := range want {
		if store.Records[i].Description != w {
			t.Errorf("record %d = %q; want %q", i, store.Records[i].Description, w)
		}
	}
}

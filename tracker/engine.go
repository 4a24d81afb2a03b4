// Package tracker hosts the expense ledger engine, a stateless façade over
// month-keyed CSV stores.
//
// Every public operation returns a plain string, success or failure, so
// callers (the CLI and the assistant's function library) never see an error
// cross this boundary. Each mutating call is a full load-modify-save cycle
// with no locking: two concurrent writers to the same month are
// last-write-wins.
package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"lifeassist"
	"lifeassist/date"
	"lifeassist/renderer"
)

// Config carries the process-wide settings of an engine.
type Config struct {
	// Dir is the storage directory, created on demand.
	Dir string
	// Categories is the allowed category set. Defaults to
	// lifeassist.DefaultCategories.
	Categories lifeassist.Categories
	// Currency is the display currency of report totals. Defaults to EUR.
	Currency string
	// Now supplies the engine clock. Defaults to time.Now.
	Now func() time.Time
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Engine resolves months to store files and runs the ledger operations.
// It holds no cached stores between calls; only the named frames loaded by
// LoadFrame live for its lifetime, and they are never evicted.
type Engine struct {
	dir        string
	categories lifeassist.Categories
	currency   string
	now        func() time.Time
	log        *slog.Logger
	frames     map[string]*lifeassist.Table
}

// New builds an engine from the given configuration.
func New(cfg Config) *Engine {
	if cfg.Categories == nil {
		cfg.Categories = lifeassist.DefaultCategories
	}
	if cfg.Currency == "" {
		cfg.Currency = "EUR"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Engine{
		dir:        cfg.Dir,
		categories: cfg.Categories,
		currency:   cfg.Currency,
		now:        cfg.Now,
		log:        cfg.Logger,
		frames:     make(map[string]*lifeassist.Table),
	}
}

// Categories returns the engine's allowed category set.
func (e *Engine) Categories() lifeassist.Categories { return e.categories }

const noExpenses = "You have no recorded expenses for this period."

// resolve returns m, or the current calendar month when m is unset.
func (e *Engine) resolve(m date.Month) date.Month {
	if m.IsZero() {
		return date.MonthOf(e.now())
	}
	return m
}

// file maps a month to its store path, creating the storage dir on demand.
func (e *Engine) file(m date.Month) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create storage dir %q: %w", e.dir, err)
	}
	return filepath.Join(e.dir, fmt.Sprintf("expenses_%s.csv", m)), nil
}

// load reads the month's store. A missing file is an empty store, never an
// error.
func (e *Engine) load(m date.Month) (*lifeassist.Store, error) {
	path, err := e.file(m)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lifeassist.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	store, err := lifeassist.DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return store, nil
}

// save rewrites the month's store file in full.
func (e *Engine) save(m date.Month, s *lifeassist.Store) error {
	path, err := e.file(m)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	if err := lifeassist.EncodeStore(f, s); err != nil {
		f.Close()
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return f.Close()
}

func errText(err error) string { return "Error: " + err.Error() }

func (e *Engine) invalidCategory(c string) string {
	return fmt.Sprintf("Invalid category '%s'. Valid categories are: %s.", c, e.categories)
}

// AddExpense appends a record dated now to the current month's store and
// persists it. The category must belong to the configured set: every write
// path validates membership before persisting.
func (e *Engine) AddExpense(amount decimal.Decimal, category, description string) string {
	if !e.categories.Contains(category) {
		return e.invalidCategory(category)
	}
	m := e.resolve(date.Month{})
	store, err := e.load(m)
	if err != nil {
		return errText(err)
	}
	e.log.Info("adding expense", "month", m, "amount", amount, "category", category, "description", description)
	store.Append(lifeassist.Record{Date: e.now(), Amount: amount, Category: category, Description: description})
	if err := e.save(m, store); err != nil {
		return errText(err)
	}
	return fmt.Sprintf("Expense of %s in category '%s' added.", amount, category)
}

// ListExpenses renders the month's records, or a no-records sentinel.
func (e *Engine) ListExpenses(m date.Month) string {
	m = e.resolve(m)
	store, err := e.load(m)
	if err != nil {
		return errText(err)
	}
	e.log.Info("listing expenses", "month", m, "records", len(store.Records))
	if store.Empty() {
		return noExpenses
	}
	return renderer.ExpensesMarkdown(m, store)
}

// SummarizeExpenses renders per-category totals for the month, sorted
// alphabetically by category.
func (e *Engine) SummarizeExpenses(m date.Month) string {
	m = e.resolve(m)
	store, err := e.load(m)
	if err != nil {
		return errText(err)
	}
	e.log.Info("summarizing expenses", "month", m)
	if store.Empty() {
		return noExpenses
	}
	return renderer.SummaryMarkdown(m, store.Summarize())
}

// DeleteExpense removes every record whose description matches exactly and
// persists the store. Deleting a description that matches nothing is still
// reported as a success.
func (e *Engine) DeleteExpense(description string, m date.Month) string {
	m = e.resolve(m)
	store, err := e.load(m)
	if err != nil {
		return errText(err)
	}
	removed := store.DeleteByDescription(description)
	if err := e.save(m, store); err != nil {
		return errText(err)
	}
	e.log.Info("deleted expenses", "month", m, "description", description, "removed", removed)
	return fmt.Sprintf("Expense with description '%s' has been deleted.", description)
}

// UpdateExpense overwrites amount, category and description on every record
// whose description matches exactly, then persists. An unknown category
// fails before any mutation.
func (e *Engine) UpdateExpense(description string, amount decimal.Decimal, category, newDescription string, m date.Month) string {
	if !e.categories.Contains(category) {
		return e.invalidCategory(category)
	}
	m = e.resolve(m)
	store, err := e.load(m)
	if err != nil {
		return errText(err)
	}
	updated := store.UpdateByDescription(description, amount, category, newDescription)
	if err := e.save(m, store); err != nil {
		return errText(err)
	}
	e.log.Info("updated expenses", "month", m, "description", description, "updated", updated)
	return fmt.Sprintf("Expense with description '%s' has been updated.", description)
}

// MonthlyReport renders the financial report for a required month: header,
// total in the display currency and per-category breakdown. It never
// creates the store file.
func (e *Engine) MonthlyReport(m date.Month) string {
	if m.IsZero() {
		return "Error: a year and month are required for a report."
	}
	store, err := e.load(m)
	if err != nil {
		return errText(err)
	}
	e.log.Info("generating report", "month", m)
	if store.Empty() {
		return fmt.Sprintf("No expenses recorded for %s.", m)
	}
	total := lifeassist.M(store.Total(), e.currency)
	return renderer.ReportMarkdown(m, total, store.Summarize(), e.currency)
}

// CreateMonthlyFile initializes the month's store file. It is idempotent:
// an existing file is reported and left untouched.
func (e *Engine) CreateMonthlyFile(m date.Month) string {
	if m.IsZero() {
		return "Error: a year and month are required."
	}
	path, err := e.file(m)
	if err != nil {
		return errText(err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Sprintf("Expense file for %s already exists.", m)
	}
	if err := e.save(m, lifeassist.NewStore()); err != nil {
		return errText(err)
	}
	e.log.Info("created expense file", "month", m)
	return fmt.Sprintf("Expense file for %s created successfully.", m)
}

// RunTableOperation loads the month's store as a table and runs a registry
// operation against it. Every failure comes back as an error string.
func (e *Engine) RunTableOperation(m date.Month, name string, params lifeassist.Params) string {
	m = e.resolve(m)
	store, err := e.load(m)
	if err != nil {
		return opError(err)
	}
	return e.runOperation(lifeassist.TableOf(store), name, params)
}

// LoadFrame loads an arbitrary CSV into a named in-memory frame slot for
// later ad-hoc inspection.
func (e *Engine) LoadFrame(csvPath, name string) string {
	f, err := os.Open(csvPath)
	if err != nil {
		return errText(fmt.Errorf("could not read CSV at %s: %w", csvPath, err))
	}
	defer f.Close()
	t, err := lifeassist.DecodeTable(f)
	if err != nil {
		return errText(fmt.Errorf("could not parse CSV at %s: %w", csvPath, err))
	}
	if t.Empty() {
		return fmt.Sprintf("CSV file at %s is empty.", csvPath)
	}
	e.frames[name] = t
	e.log.Info("loaded frame", "name", name, "path", csvPath, "rows", len(t.Rows))
	return fmt.Sprintf("Frame '%s' created from CSV at %s.", name, csvPath)
}

// RunFrameOperation runs a registry operation against a named frame.
func (e *Engine) RunFrameOperation(name, opName string, params lifeassist.Params) string {
	t, ok := e.frames[name]
	if !ok {
		return errText(fmt.Errorf("no frame named %q, load one first", name))
	}
	return e.runOperation(t, opName, params)
}

func (e *Engine) runOperation(t *lifeassist.Table, name string, params lifeassist.Params) string {
	e.log.Info("running operation", "operation", name, "parameters", fmt.Sprint(params))
	op, err := lifeassist.LookupOperation(name)
	if err != nil {
		return opError(err)
	}
	res, err := op.Run(t, params)
	if err != nil {
		return opError(err)
	}
	switch {
	case res.Table != nil:
		return renderer.TableMarkdown(res.Table)
	case res.Text != "":
		return res.Text
	default:
		return "Operation ran successfully."
	}
}

func opError(err error) string { return fmt.Sprintf("Error running operation: %v", err) }

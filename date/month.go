// Package date provides the month-granularity periods the expense ledger is
// keyed by.
package date

import (
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// MonthFormat is the format used to represent months as strings.
const MonthFormat = "2006-01" // write format

// Month identifies one ledger period, a (year, month) pair.
//
// The zero value means "unspecified": callers that accept an optional period
// treat it as the current calendar month.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	p := Month{year, month}
	y, m, _ := p.time().Date()
	return Month{y, m}
}

// time returns a time.Time that is a canonical representation of that month
// (first day at midnight UTC).
func (p Month) time() time.Time { return time.Date(p.y, p.m, 1, 0, 0, 0, 0, time.UTC) }

// MonthOf returns the month the instant t falls in.
func MonthOf(t time.Time) Month { return NewMonth(t.Year(), t.Month()) }

// ThisMonth returns the current month.
func ThisMonth() Month { return MonthOf(time.Now()) }

// IsZero reports whether p is the unspecified month.
func (p Month) IsZero() bool { return p == Month{} }

// Year returns the year of the period.
func (p Month) Year() int { return p.y }

// Month returns the month of the period.
func (p Month) Month() time.Month { return p.m }

// Before reports whether p is earlier than x.
func (p Month) Before(x Month) bool { return p.time().Before(x.time()) }

// String formats the month in its standard YYYY-MM form.
func (p Month) String() string {
	if p.IsZero() {
		return ""
	}
	return p.time().Format(MonthFormat)
}

// ParseMonth parses a Month from a string. It is lenient and accepts forms
// like "2025-7" as well as the canonical "2025-07".
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return MonthOf(t), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	p, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

package lifeassist

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a single expense line.
type Record struct {
	Date        time.Time // record-creation time
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Store holds the ordered records of one month. Row order is insertion order
// and is preserved on disk.
type Store struct {
	Records []Record
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Empty reports whether the store has no records.
func (s *Store) Empty() bool { return len(s.Records) == 0 }

// Append adds a record at the end of the store.
func (s *Store) Append(r Record) { s.Records = append(s.Records, r) }

// DeleteByDescription removes every record whose description is exactly desc
// and returns how many were removed. The description is not a unique key, so
// zero, one or many records may go.
func (s *Store) DeleteByDescription(desc string) int {
	kept := s.Records[:0]
	removed := 0
	for _, r := range s.Records {
		if r.Description == desc {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.Records = kept
	return removed
}

// UpdateByDescription overwrites amount, category and description on every
// record whose description is exactly desc, and returns how many were
// updated.
func (s *Store) UpdateByDescription(desc string, amount decimal.Decimal, category, newDesc string) int {
	updated := 0
	for i := range s.Records {
		if s.Records[i].Description != desc {
			continue
		}
		s.Records[i].Amount = amount
		s.Records[i].Category = category
		s.Records[i].Description = newDesc
		updated++
	}
	return updated
}

// CategoryTotal is one row of a per-category summary.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summarize groups records by category and sums their amounts. Rows are
// sorted alphabetically by category label.
func (s *Store) Summarize() []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, r := range s.Records {
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}
	rows := make([]CategoryTotal, 0, len(totals))
	for c, t := range totals {
		rows = append(rows, CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}

// Total sums the amounts of all records.
func (s *Store) Total() decimal.Decimal {
	var t decimal.Decimal
	for _, r := range s.Records {
		t = t.Add(r.Amount)
	}
	return t
}

package lifeassist

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table is a loose column/row grid. Period stores are projected into one to
// be queried; arbitrary CSVs imported by the user load into one directly.
type Table struct {
	Columns []string
	Rows    [][]string
}

// TableOf projects a store into a table with the canonical store columns.
func TableOf(s *Store) *Table {
	t := &Table{Columns: append([]string(nil), storeHeader...)}
	for _, r := range s.Records {
		t.Rows = append(t.Rows, []string{
			r.Date.Format(StampFormat),
			r.Amount.String(),
			r.Category,
			r.Description,
		})
	}
	return t
}

// DecodeTable reads any CSV with a header row into a table.
func DecodeTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header row: %w", err)
	}
	t := &Table{Columns: header}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool { return len(t.Rows) == 0 }

// column returns the index of the named column.
func (t *Table) column(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q, have %v", name, t.Columns)
}

package lifeassist

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// StampFormat is the format record dates are persisted in.
const StampFormat = time.RFC3339

// storeHeader is the canonical column set, in on-disk order. Every store file
// carries exactly these columns and no index column.
var storeHeader = []string{"date", "amount", "category", "description"}

// DecodeStore reads a store from CSV data. The header row must match the
// canonical columns exactly.
func DecodeStore(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row, want columns %v", storeHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header row: %w", err)
	}
	if len(header) != len(storeHeader) {
		return nil, fmt.Errorf("got %d columns %v, want columns %v", len(header), header, storeHeader)
	}
	for i, want := range storeHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected column %q at position %d, want %q", header[i], i, want)
		}
	}

	store := NewStore()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}
		rec, err := decodeRecord(row)
		if err != nil {
			return nil, err
		}
		store.Append(rec)
	}
	return store, nil
}

func decodeRecord(row []string) (Record, error) {
	stamp, err := time.Parse(StampFormat, row[0])
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q: %w", row[0], err)
	}
	amount, err := decimal.NewFromString(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("invalid amount %q: %w", row[1], err)
	}
	return Record{Date: stamp, Amount: amount, Category: row[2], Description: row[3]}, nil
}

// EncodeStore writes the full store as CSV, columns in canonical order.
func EncodeStore(w io.Writer, s *Store) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(storeHeader); err != nil {
		return fmt.Errorf("could not write header row: %w", err)
	}
	for _, r := range s.Records {
		row := []string{r.Date.Format(StampFormat), r.Amount.String(), r.Category, r.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

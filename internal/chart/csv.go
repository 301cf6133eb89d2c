package chart

import (
	"encoding/csv"
	"fmt"
	"io"
)

const (
	numFields  = 4
	colTerm    = 0
	colLedger  = 1
	colAccount = 2
	colClass   = 3
)

// ReadEntries reads chart-of-accounts.csv.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes chart-of-accounts.csv.
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"term", "ledger", "account_name", "class"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTerm] = e.Term
	row[colLedger] = e.Ledger
	row[colAccount] = e.Account
	row[colClass] = e.ClassID
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colTerm] == "" {
		return Entry{}, fmt.Errorf("empty term")
	}
	if _, ok := Class(record[colClass]); !ok {
		return Entry{}, fmt.Errorf("unknown class %q", record[colClass])
	}
	return Entry{
		Term:    record[colTerm],
		Ledger:  record[colLedger],
		Account: record[colAccount],
		ClassID: record[colClass],
	}, nil
}

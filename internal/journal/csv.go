// Package journal reads and validates journal CSV files and replays them
// through the posting engine. One file holds one year of entries; each row
// is one leg of a double-entry, addressed by chart term and tied to its
// entry by an ID leg suffix.
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/book"
)

// Line is a single row in journal.csv: one side of a double-entry. Amount
// is in major units.
type Line struct {
	EntryID string // "YYYY-NNNNNx" where x = a,b,c...
	Date    time.Time
	Term    string
	Side    book.Side
	Amount  decimal.Decimal
	Memo    string
}

// EntryGroup returns the base entry ID (without leg suffix).
func (l Line) EntryGroup() string {
	return EntryGroup(l.EntryID)
}

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,term,side,amount,memo"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colEntryID = 0
	colDate    = 1
	colTerm    = 2
	colSide    = 3
	colAmount  = 4
	colMemo    = 5
)

// ReadLines reads all lines from a journal.csv reader.
func ReadLines(r io.Reader) ([]Line, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var lines []Line
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes lines to a journal.csv writer (including header).
func WriteLines(w io.Writer, lines []Line) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendLines appends lines to an existing journal.csv writer (no header).
func AppendLines(w io.Writer, lines []Line) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalLine converts a Line to a CSV row.
func MarshalLine(line Line) []string {
	row := make([]string, numFields)
	row[colEntryID] = line.EntryID
	row[colDate] = line.Date.Format(dateFormat)
	row[colTerm] = line.Term
	row[colSide] = string(line.Side)
	row[colAmount] = line.Amount.StringFixed(2)
	row[colMemo] = line.Memo
	return row
}

// UnmarshalLine converts a CSV row to a Line.
func UnmarshalLine(record []string) (Line, error) {
	if len(record) != numFields {
		return Line{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Line{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Line{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Line{
		EntryID: record[colEntryID],
		Date:    date,
		Term:    record[colTerm],
		Side:    book.Side(record[colSide]),
		Amount:  amount,
		Memo:    record[colMemo],
	}, nil
}

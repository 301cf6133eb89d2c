// Package auditlog keeps an append-only CSV record of posting runs. The
// engine itself never logs; this is the CLI's trail of what was replayed
// and when.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the posting log.
type Entry struct {
	Timestamp time.Time
	Command   string
	Year      int
	Entries   int  // journal entries replayed
	Ledgers   int  // ledgers touched
	Balanced  bool // every ledger conserved balance afterwards
}

// Header is the CSV header for posting-log.csv.
const Header = "timestamp,command,year,entries,ledgers,balanced"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/posting-log.csv"
	colTimestamp = 0
	colCommand   = 1
	colYear      = 2
	colEntries   = 3
	colLedgers   = 4
	colBalanced  = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colYear] = strconv.Itoa(e.Year)
	row[colEntries] = strconv.Itoa(e.Entries)
	row[colLedgers] = strconv.Itoa(e.Ledgers)
	row[colBalanced] = strconv.FormatBool(e.Balanced)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	year, err := strconv.Atoi(record[colYear])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing year %q: %w", record[colYear], err)
	}
	entries, err := strconv.Atoi(record[colEntries])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing entries %q: %w", record[colEntries], err)
	}
	ledgers, err := strconv.Atoi(record[colLedgers])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing ledgers %q: %w", record[colLedgers], err)
	}
	balanced, err := strconv.ParseBool(record[colBalanced])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing balanced %q: %w", record[colBalanced], err)
	}

	return Entry{
		Timestamp: ts,
		Command:   record[colCommand],
		Year:      year,
		Entries:   entries,
		Ledgers:   ledgers,
		Balanced:  balanced,
	}, nil
}

// Append writes entries to <repoRoot>/logs/posting-log.csv, creating the
// file and header if needed.
func Append(repoRoot string, entries []Entry) error {
	dir := filepath.Join(repoRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(repoRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening posting log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <repoRoot>/logs/posting-log.csv.
// Returns nil if the file does not exist.
func Read(repoRoot string) ([]Entry, error) {
	path := filepath.Join(repoRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening posting log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading posting log CSV: %w", err)
	}

	if len(records) <= 1 {
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

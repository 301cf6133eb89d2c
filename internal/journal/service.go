package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/book"
	"github.com/bookkeep-dev/bookkeep/internal/builder"
	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/money"
)

// Service provides business logic for journal files: appending entries and
// replaying a year's journal onto a fresh posting state.
type Service struct {
	repoRoot string
	chart    *chart.Service
}

// NewService creates a journal Service.
func NewService(repoRoot string, c *chart.Service) *Service {
	return &Service{repoRoot: repoRoot, chart: c}
}

// AddDoubleParams holds parameters for creating a double-entry.
type AddDoubleParams struct {
	Date       time.Time
	Memo       string
	DebitTerm  string
	CreditTerm string
	Amount     decimal.Decimal
}

// AddDouble creates a balanced double-entry (debit + credit legs),
// validates the whole year together, and appends to journal.csv. Returns
// the entry ID.
func (s *Service) AddDouble(params AddDoubleParams) (string, error) {
	year := params.Date.Year()

	seq, err := s.NextEntrySeq(year)
	if err != nil {
		return "", err
	}

	entryID := FormatEntryID(year, seq)
	newLines := []Line{
		{
			EntryID: FormatLegID(entryID, 0),
			Date:    params.Date,
			Term:    params.DebitTerm,
			Side:    book.SideDebit,
			Amount:  params.Amount,
			Memo:    params.Memo,
		},
		{
			EntryID: FormatLegID(entryID, 1),
			Date:    params.Date,
			Term:    params.CreditTerm,
			Side:    book.SideCredit,
			Amount:  params.Amount,
			Memo:    params.Memo,
		},
	}

	if err := s.Append(year, newLines); err != nil {
		return "", err
	}
	return entryID, nil
}

// Append validates newLines together with the year's existing journal and
// appends them, creating the file and header if needed. Nothing is written
// when validation fails.
func (s *Service) Append(year int, newLines []Line) error {
	existing, err := s.ReadYear(year)
	if err != nil {
		return err
	}

	// Validate ALL lines together.
	allLines := append(existing, newLines...)
	if verrs := ValidateLines(allLines, s.chart, year); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	journalPath := s.yearPath(year)
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendLines(f, newLines); err != nil {
		return fmt.Errorf("appending lines: %w", err)
	}
	return nil
}

// ReadYear reads all lines for a given year. A missing file is an empty
// journal, not an error.
func (s *Service) ReadYear(year int) ([]Line, error) {
	path := s.yearPath(year)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return lines, nil
}

// NextEntrySeq returns the next available sequence number for a year.
func (s *Service) NextEntrySeq(year int) (int, error) {
	lines, err := s.ReadYear(year)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, line := range lines {
		_, seq, err := ParseEntryID(line.EntryID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

// Replay validates a year's journal, converts each entry group into an
// interledger entry through the chart, and posts them in order onto an
// empty state. Returns the resulting state.
func (s *Service) Replay(year int) (book.State, error) {
	lines, err := s.ReadYear(year)
	if err != nil {
		return book.State{}, err
	}

	if verrs := ValidateLines(lines, s.chart, year); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return book.State{}, fmt.Errorf("journal invalid: %s", strings.Join(msgs, "; "))
	}

	groups, order := groupLines(lines)

	st := book.EmptyState()
	for _, g := range order {
		entry, err := s.journalize(groups[g])
		if err != nil {
			return book.State{}, fmt.Errorf("entry %s: %w", g, err)
		}
		st, err = st.Post(entry)
		if err != nil {
			return book.State{}, fmt.Errorf("entry %s: %w", g, err)
		}
	}
	return st, nil
}

// journalize converts one entry group's lines into a balanced interledger
// entry, mapping terms through the chart and amounts into minor units.
func (s *Service) journalize(lines []Line) (book.InterledgerEntry, error) {
	b := builder.New()
	scopes := make(map[string]*builder.Scope)

	for _, line := range lines {
		ledgerName, err := s.chart.Ledger(line.Term)
		if err != nil {
			return book.InterledgerEntry{}, err
		}
		head, err := s.chart.Account(line.Term)
		if err != nil {
			return book.InterledgerEntry{}, err
		}
		minor, err := money.ToMinor(line.Amount)
		if err != nil {
			return book.InterledgerEntry{}, fmt.Errorf("line %s: %w", line.EntryID, err)
		}

		scope, ok := scopes[ledgerName]
		if !ok {
			scope = b.On(ledgerName)
			scopes[ledgerName] = scope
		}
		if line.Side == book.SideDebit {
			scope.Debit(head, minor)
		} else {
			scope.Credit(head, minor)
		}
	}

	return b.Journalize()
}

// groupLines groups lines by entry ID in order of first occurrence.
func groupLines(lines []Line) (map[string][]Line, []string) {
	groups := make(map[string][]Line)
	var order []string
	for _, line := range lines {
		g := line.EntryGroup()
		if _, seen := groups[g]; !seen {
			order = append(order, g)
		}
		groups[g] = append(groups[g], line)
	}
	return groups, order
}

func (s *Service) yearPath(year int) string {
	return filepath.Join(s.repoRoot, fmt.Sprintf("%04d", year), "journal.csv")
}

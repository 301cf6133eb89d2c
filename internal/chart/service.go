package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bookkeep-dev/bookkeep/internal/book"
)

// Entry maps one application-level term to an account in a ledger.
type Entry struct {
	Term    string // unique application identifier, e.g. "cash"
	Ledger  string // target ledger name
	Account string // account name within the ledger
	ClassID string // account class ID, see Class
}

// UnknownTermError reports a lookup for a term the chart does not define.
type UnknownTermError struct {
	Term string
}

func (e *UnknownTermError) Error() string {
	return fmt.Sprintf("unknown chart term %q", e.Term)
}

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	entries []Entry
	byTerm  map[string]Entry
}

// NewService creates a Service from a slice of chart entries.
func NewService(entries []Entry) *Service {
	byTerm := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byTerm[e.Term] = e
	}
	return &Service{entries: entries, byTerm: byTerm}
}

// Load reads chart-of-accounts.csv from a repo root and returns a Service.
func Load(repoRoot string) (*Service, error) {
	path := filepath.Join(repoRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(entries), nil
}

// All returns all chart entries.
func (s *Service) All() []Entry {
	return s.entries
}

// Exists reports whether a term is defined.
func (s *Service) Exists(term string) bool {
	_, ok := s.byTerm[term]
	return ok
}

// Ledger returns the ledger name a term posts to.
func (s *Service) Ledger(term string) (string, error) {
	e, ok := s.byTerm[term]
	if !ok {
		return "", &UnknownTermError{Term: term}
	}
	return e.Ledger, nil
}

// Account returns the account head a term posts to.
func (s *Service) Account(term string) (book.AccountHead, error) {
	e, ok := s.byTerm[term]
	if !ok {
		return book.AccountHead{}, &UnknownTermError{Term: term}
	}
	class, ok := Class(e.ClassID)
	if !ok {
		return book.AccountHead{}, fmt.Errorf("term %q references unknown class %q", term, e.ClassID)
	}
	return book.AccountHead{Name: e.Account, Class: class}, nil
}

// Save writes the chart to accounts/chart-of-accounts.csv under repoRoot.
func (s *Service) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteEntries(f, s.entries); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

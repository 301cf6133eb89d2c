// Package importer parses bank CSV exports and turns them into draft
// journal lines through the chart of accounts.
package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/book"
	"github.com/bookkeep-dev/bookkeep/internal/journal"
)

// Transaction is a parsed bank CSV row. Amount is in major units; negative
// means money left the account.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}

// Parser converts a bank CSV file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// Mapping names the chart terms draft entries post between.
type Mapping struct {
	BankTerm    string // the bank account transactions settle against
	ExpenseTerm string // counter-term for money out
	IncomeTerm  string // counter-term for money in
}

// DraftLines converts transactions into journal lines, two legs per
// transaction: money out debits the expense term and credits the bank;
// money in debits the bank and credits the income term. Entry IDs start at
// firstSeq. Zero-amount transactions are skipped.
func DraftLines(txns []Transaction, m Mapping, firstSeq int) []journal.Line {
	var lines []journal.Line
	seq := firstSeq
	for _, txn := range txns {
		if txn.Amount.IsZero() {
			continue
		}

		debitTerm, creditTerm := m.BankTerm, m.IncomeTerm
		amount := txn.Amount
		if amount.IsNegative() {
			debitTerm, creditTerm = m.ExpenseTerm, m.BankTerm
			amount = amount.Neg()
		}

		entryID := journal.FormatEntryID(txn.Date.Year(), seq)
		memo := txn.Description
		if txn.Reference != "" {
			memo = fmt.Sprintf("%s (%s)", txn.Description, txn.Reference)
		}
		lines = append(lines,
			journal.Line{
				EntryID: journal.FormatLegID(entryID, 0),
				Date:    txn.Date,
				Term:    debitTerm,
				Side:    book.SideDebit,
				Amount:  amount,
				Memo:    memo,
			},
			journal.Line{
				EntryID: journal.FormatLegID(entryID, 1),
				Date:    txn.Date,
				Term:    creditTerm,
				Side:    book.SideCredit,
				Amount:  amount,
				Memo:    memo,
			},
		)
		seq++
	}
	return lines
}

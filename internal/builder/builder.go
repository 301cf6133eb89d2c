// Package builder assembles interledger entries from plain function calls,
// the replacement for a block-syntax entry notation. A builder collects
// per-ledger debit/credit operations and journalizes them, optionally
// demanding that every ledger's entry balances.
package builder

import (
	"github.com/bookkeep-dev/bookkeep/internal/book"
)

// Builder accumulates (ledger, operations) pairs in call order.
type Builder struct {
	entries []book.LedgerEntry
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Scope records operations against one ledger.
type Scope struct {
	b   *Builder
	idx int
}

// On opens a scope for ledger. Calling On twice with the same name creates
// a second pair; pairs are kept in order and never merged here.
func (b *Builder) On(ledger string) *Scope {
	b.entries = append(b.entries, book.LedgerEntry{Ledger: ledger})
	return &Scope{b: b, idx: len(b.entries) - 1}
}

// Debit records a debit operation in this scope.
func (s *Scope) Debit(head book.AccountHead, amount int64) *Scope {
	return s.record(book.Debit(head, amount))
}

// Credit records a credit operation in this scope.
func (s *Scope) Credit(head book.AccountHead, amount int64) *Scope {
	return s.record(book.Credit(head, amount))
}

func (s *Scope) record(op book.Operation) *Scope {
	entry := &s.b.entries[s.idx]
	entry.Entry.Operations = append(entry.Entry.Operations, op)
	return s
}

// Journalize returns the assembled interledger entry, failing with
// UnbalancedError on the first ledger whose debits and credits differ.
func (b *Builder) Journalize() (book.InterledgerEntry, error) {
	for _, le := range b.entries {
		if !le.Entry.Balanced() {
			debits, credits := le.Entry.Totals()
			return book.InterledgerEntry{}, &book.UnbalancedError{
				Ledger:  le.Ledger,
				Debits:  debits,
				Credits: credits,
			}
		}
	}
	return b.JournalizeUnchecked(), nil
}

// JournalizeUnchecked returns the assembled interledger entry without the
// balance check.
func (b *Builder) JournalizeUnchecked() book.InterledgerEntry {
	entries := make([]book.LedgerEntry, len(b.entries))
	copy(entries, b.entries)
	return book.NewInterledgerEntry(entries...)
}

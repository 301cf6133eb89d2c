package book

// JournalEntry is an ordered list of operations meant to be applied
// atomically to one ledger. Construction never deduplicates; Prune is the
// explicit step that merges duplicate accounts into canonical order.
type JournalEntry struct {
	Operations []Operation
}

// NewJournalEntry wraps ops as a journal entry, preserving order.
func NewJournalEntry(ops ...Operation) JournalEntry {
	return JournalEntry{Operations: ops}
}

// Totals returns the debit-label and credit-label amount sums.
func (e JournalEntry) Totals() (debits, credits int64) {
	for _, op := range e.Operations {
		if op.Side == SideDebit {
			debits += op.Amount
		} else {
			credits += op.Amount
		}
	}
	return debits, credits
}

// Balanced reports whether the debit-label sum equals the credit-label
// sum. The check is on the labels alone, independent of any account's
// natural balance.
func (e JournalEntry) Balanced() bool {
	debits, credits := e.Totals()
	return debits == credits
}

// Empty reports whether the entry has no operations, or only zero-amount
// operations.
func (e JournalEntry) Empty() bool {
	for _, op := range e.Operations {
		if op.Amount != 0 {
			return false
		}
	}
	return true
}

// Merge concatenates the operations of both entries, preserving order.
// It never deduplicates.
func (e JournalEntry) Merge(other JournalEntry) JournalEntry {
	ops := make([]Operation, 0, len(e.Operations)+len(other.Operations))
	ops = append(ops, e.Operations...)
	ops = append(ops, other.Operations...)
	return JournalEntry{Operations: ops}
}

// MergeEntries concatenates all entries in order. An empty input yields an
// empty entry.
func MergeEntries(entries []JournalEntry) JournalEntry {
	var merged JournalEntry
	for _, e := range entries {
		merged = merged.Merge(e)
	}
	return merged
}

// Prune reduces the entry to one operation per account in canonical order:
// duplicates merged, then sorted. Prune is idempotent.
func (e JournalEntry) Prune() JournalEntry {
	return JournalEntry{Operations: SortOperations(Uniq(e.Operations))}
}

// Reverse flips every operation and reverses the list order, so that a
// reversal re-applied in chronological order still reads naturally.
func (e JournalEntry) Reverse() JournalEntry {
	ops := make([]Operation, len(e.Operations))
	for i, op := range e.Operations {
		ops[len(ops)-1-i] = op.Reverse()
	}
	return JournalEntry{Operations: ops}
}

package book

// LedgerEntry pairs a target ledger name with a journal entry.
type LedgerEntry struct {
	Ledger string
	Entry  JournalEntry
}

// InterledgerEntry is a journal entry grouped per target ledger, for
// transactions spanning multiple ledgers. Order is preserved and a ledger
// name may appear more than once before pruning.
type InterledgerEntry struct {
	Entries []LedgerEntry
}

// NewInterledgerEntry wraps entries, preserving order.
func NewInterledgerEntry(entries ...LedgerEntry) InterledgerEntry {
	return InterledgerEntry{Entries: entries}
}

// Balanced reports whether every contained journal entry is individually
// balanced.
func (e InterledgerEntry) Balanced() bool {
	for _, le := range e.Entries {
		if !le.Entry.Balanced() {
			return false
		}
	}
	return true
}

// Empty reports whether every contained journal entry is empty.
func (e InterledgerEntry) Empty() bool {
	for _, le := range e.Entries {
		if !le.Entry.Empty() {
			return false
		}
	}
	return true
}

// Prune groups entries by ledger name in order of first occurrence, then
// merges and prunes each group to one canonical journal entry per ledger.
func (e InterledgerEntry) Prune() InterledgerEntry {
	groups := make(map[string][]JournalEntry, len(e.Entries))
	var order []string
	for _, le := range e.Entries {
		if _, seen := groups[le.Ledger]; !seen {
			order = append(order, le.Ledger)
		}
		groups[le.Ledger] = append(groups[le.Ledger], le.Entry)
	}
	pruned := make([]LedgerEntry, 0, len(order))
	for _, name := range order {
		pruned = append(pruned, LedgerEntry{
			Ledger: name,
			Entry:  MergeEntries(groups[name]).Prune(),
		})
	}
	return InterledgerEntry{Entries: pruned}
}

// Reverse reverses every contained journal entry, preserving each entry's
// ledger association and the pair order.
func (e InterledgerEntry) Reverse() InterledgerEntry {
	entries := make([]LedgerEntry, len(e.Entries))
	for i, le := range e.Entries {
		entries[i] = LedgerEntry{Ledger: le.Ledger, Entry: le.Entry.Reverse()}
	}
	return InterledgerEntry{Entries: entries}
}

package book

import "fmt"

// State is a named collection of ledgers holding current aggregated
// balances. It keeps no history and is not a ledger of record.
type State struct {
	Ledgers map[string]Ledger
}

// EmptyState returns a state with no ledgers.
func EmptyState() State {
	return State{Ledgers: map[string]Ledger{}}
}

// NewState folds ledgers into a state. Later ledgers with the same name
// replace earlier ones.
func NewState(ledgers ...Ledger) State {
	m := make(map[string]Ledger, len(ledgers))
	for _, l := range ledgers {
		m[l.Name] = l
	}
	return State{Ledgers: m}
}

// LedgerNamed returns the stored ledger, or an empty ledger with that name
// if absent.
func (s State) LedgerNamed(name string) Ledger {
	if l, ok := s.Ledgers[name]; ok {
		return l
	}
	return NewLedger(name)
}

// Post applies every (ledger, entry) pair of entry in its original order,
// fetching or creating each target ledger. Pairs for the same ledger are
// applied one after another, not merged first; callers wanting a single
// canonical application prune beforehand. Work happens on a draft copy:
// on any error the receiver is unchanged.
func (s State) Post(entry InterledgerEntry) (State, error) {
	next := make(map[string]Ledger, len(s.Ledgers)+len(entry.Entries))
	for name, l := range s.Ledgers {
		next[name] = l
	}
	for _, le := range entry.Entries {
		ledger, ok := next[le.Ledger]
		if !ok {
			ledger = NewLedger(le.Ledger)
		}
		posted, err := ledger.Post(le.Entry)
		if err != nil {
			return State{}, fmt.Errorf("posting to ledger %q: %w", le.Ledger, err)
		}
		next[le.Ledger] = posted
	}
	return State{Ledgers: next}, nil
}

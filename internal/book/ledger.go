package book

// Ledger is a named collection of accounts keyed by account name. The map
// invariant is that every stored account's head name equals its key.
type Ledger struct {
	Name     string
	Accounts map[string]Account
}

// NewLedger folds accounts into a ledger. Later accounts with the same
// head name replace earlier ones.
func NewLedger(name string, accounts ...Account) Ledger {
	m := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		m[a.Head.Name] = a
	}
	return Ledger{Name: name, Accounts: m}
}

// AccountFor returns the stored account for head, or a fresh zero-balance
// account with that head if absent. It never fails.
func (l Ledger) AccountFor(head AccountHead) Account {
	if a, ok := l.Accounts[head.Name]; ok {
		return a
	}
	return NewAccount(head)
}

// Post applies every operation of entry in order, fetching or creating the
// target account for each, and returns the updated ledger. Operations on
// the same account within one call observe each other's effects. Work
// happens on a draft copy: on any error the receiver is unchanged and no
// prefix of the entry has been applied.
func (l Ledger) Post(entry JournalEntry) (Ledger, error) {
	next := make(map[string]Account, len(l.Accounts)+len(entry.Operations))
	for name, a := range l.Accounts {
		next[name] = a
	}
	for _, op := range entry.Operations {
		acct, ok := next[op.Head.Name]
		if !ok {
			acct = NewAccount(op.Head)
		}
		posted, err := acct.Post(op)
		if err != nil {
			return Ledger{}, err
		}
		next[op.Head.Name] = posted
	}
	return Ledger{Name: l.Name, Accounts: next}, nil
}

// InBalance reports whether the ledger conserves balance globally: the
// summed balances of debit-natural accounts equal the summed balances of
// credit-natural accounts. This is a whole-ledger invariant, distinct from
// the per-transaction JournalEntry.Balanced check.
func (l Ledger) InBalance() bool {
	var debitNatural, creditNatural int64
	for _, a := range l.Accounts {
		if a.Head.Class.NaturalBalance == SideDebit {
			debitNatural += a.Balance
		} else {
			creditNatural += a.Balance
		}
	}
	return debitNatural == creditNatural
}

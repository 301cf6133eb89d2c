// Package book implements the in-memory double-entry posting engine:
// operations, accounts, journal entries, ledgers, and multi-ledger state.
// Everything here is a pure value; every "update" returns a new value and
// the package performs no I/O.
package book

// Side is the direction label on an operation. Its effect on a balance
// depends on the account class's natural balance, not on the label itself.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// AccountClass is a static classification for accounts. NaturalBalance is
// the side on which balances of this class increase.
type AccountClass struct {
	ID             string
	ParentID       string // "" = top-level
	Name           string
	NaturalBalance Side
}

// AccountHead identifies an account: a name unique within a ledger plus its
// class. Two heads refer to the same account iff their names match; the
// class must be consistent for a given name, which is the caller's job.
type AccountHead struct {
	Name  string
	Class AccountClass
}

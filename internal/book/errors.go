package book

import (
	"errors"
	"fmt"
)

// ErrEmptyMerge is returned when a merge is asked to fold zero operations.
var ErrEmptyMerge = errors.New("merging requires at least one operation")

// AccountMismatchError reports an operation aimed at one account being
// combined with, or posted to, a different account.
type AccountMismatchError struct {
	Want string // account name the operation targets
	Got  string // account name it was applied against
}

func (e *AccountMismatchError) Error() string {
	return fmt.Sprintf("account mismatch: operation targets %q, applied to %q", e.Want, e.Got)
}

// UnbalancedError reports a journal entry whose debit and credit totals
// differ when the caller demanded a balanced result. Amounts are in minor
// units.
type UnbalancedError struct {
	Ledger  string
	Debits  int64
	Credits int64
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("unbalanced entry for ledger %q: debits %d != credits %d", e.Ledger, e.Debits, e.Credits)
}

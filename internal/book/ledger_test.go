package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountPost(t *testing.T) {
	acct := NewAccount(cash)
	posted, err := acct.Post(Debit(cash, 5000))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), posted.Balance)
	// Original value untouched.
	assert.Equal(t, int64(0), acct.Balance)

	posted, err = posted.Post(Credit(cash, 1500))
	require.NoError(t, err)
	assert.Equal(t, int64(3500), posted.Balance)
}

func TestAccountPostMismatch(t *testing.T) {
	acct := Account{Head: cash, Balance: 42}
	_, err := acct.Post(Debit(deposits, 100))
	var mismatch *AccountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "deposits", mismatch.Want)
	assert.Equal(t, "cash", mismatch.Got)
	assert.Equal(t, int64(42), acct.Balance)
}

func TestAccountBalanceConservation(t *testing.T) {
	// Final balance equals the sum of per-operation deltas, whatever the mix.
	ops := []Operation{
		Debit(cash, 300),
		Credit(cash, 120),
		Debit(cash, 45),
		Credit(cash, 500),
	}
	acct := NewAccount(cash)
	var want int64
	for _, op := range ops {
		var err error
		acct, err = acct.Post(op)
		require.NoError(t, err)
		want += op.DeltaAmount()
	}
	assert.Equal(t, want, acct.Balance)
}

func TestLedgerAccountFor(t *testing.T) {
	ledger := NewLedger("acme", Account{Head: cash, Balance: 100})
	assert.Equal(t, int64(100), ledger.AccountFor(cash).Balance)
	// Absent accounts come back zero-balanced, ledger unchanged.
	assert.Equal(t, Account{Head: deposits}, ledger.AccountFor(deposits))
	assert.Len(t, ledger.Accounts, 1)
}

func TestLedgerPost(t *testing.T) {
	entry := NewJournalEntry(Debit(cash, 5000), Credit(deposits, 5000))
	require.True(t, entry.Balanced())

	ledger, err := NewLedger("acme").Post(entry)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), ledger.AccountFor(cash).Balance)
	// deposits is credit-natural, so the matching credit increases it.
	assert.Equal(t, int64(5000), ledger.AccountFor(deposits).Balance)
	assert.True(t, ledger.InBalance())
}

func TestLedgerPostSequentialWithinCall(t *testing.T) {
	entry := NewJournalEntry(Debit(cash, 8000), Debit(cash, 2000), Credit(deposits, 10000))
	ledger, err := NewLedger("acme").Post(entry)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), ledger.AccountFor(cash).Balance)
}

func TestLedgerPostLeavesReceiverUntouched(t *testing.T) {
	original := NewLedger("acme", Account{Head: cash, Balance: 100})
	posted, err := original.Post(NewJournalEntry(Debit(cash, 50)))
	require.NoError(t, err)
	assert.Equal(t, int64(150), posted.AccountFor(cash).Balance)
	assert.Equal(t, int64(100), original.AccountFor(cash).Balance)
}

func TestLedgerInBalance(t *testing.T) {
	balanced, err := NewLedger("acme").Post(NewJournalEntry(
		Debit(cash, 7500),
		Credit(deposits, 7500),
	))
	require.NoError(t, err)
	assert.True(t, balanced.InBalance())

	skewed := NewLedger("acme", Account{Head: cash, Balance: 10})
	assert.False(t, skewed.InBalance())
}

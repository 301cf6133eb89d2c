package book

// Account is the running balance for one account head. Balance is in minor
// units and may go negative; that is allowed, if usually a modeling smell.
type Account struct {
	Head    AccountHead
	Balance int64
}

// NewAccount returns a zero-balance account for head.
func NewAccount(head AccountHead) Account {
	return Account{Head: head}
}

// Post applies op and returns the updated account. The operation must
// target this account's head; on mismatch it returns AccountMismatchError
// and the receiver is unaffected.
func (a Account) Post(op Operation) (Account, error) {
	if op.Head.Name != a.Head.Name {
		return Account{}, &AccountMismatchError{Want: op.Head.Name, Got: a.Head.Name}
	}
	a.Balance += op.DeltaAmount()
	return a, nil
}

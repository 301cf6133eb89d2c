package book

import "sort"

// Operation is a signed change request against one account. Amount is in
// the smallest currency unit and is never negative once constructed: the
// constructors normalize a negative amount by flipping the side.
type Operation struct {
	Side   Side
	Head   AccountHead
	Amount int64
}

// Debit constructs a debit operation. Debit(head, -n) == Credit(head, n).
func Debit(head AccountHead, amount int64) Operation {
	return newOperation(SideDebit, head, amount)
}

// Credit constructs a credit operation. Credit(head, -n) == Debit(head, n).
func Credit(head AccountHead, amount int64) Operation {
	return newOperation(SideCredit, head, amount)
}

func newOperation(side Side, head AccountHead, amount int64) Operation {
	if amount < 0 {
		side = side.Opposite()
		amount = -amount
	}
	return Operation{Side: side, Head: head, Amount: amount}
}

// DeltaAmount returns the signed effect on the account's balance: positive
// when the operation's side matches the class's natural balance, negative
// otherwise. This is the single source of truth for balance direction.
func (o Operation) DeltaAmount() int64 {
	if o.Side == o.Head.Class.NaturalBalance {
		return o.Amount
	}
	return -o.Amount
}

// Reverse flips the side and keeps the amount. Reversing twice yields the
// original operation.
func (o Operation) Reverse() Operation {
	return Operation{Side: o.Side.Opposite(), Head: o.Head, Amount: o.Amount}
}

// Merge combines two operations on the same account into one. Same sides
// add; opposite sides subtract b from a, keeping a's side and normalizing
// a negative result. The net DeltaAmount of the result always equals the
// sum of the inputs' net deltas, whatever the fold order, even though the
// side/amount representation of an intermediate result is order-dependent.
func Merge(a, b Operation) (Operation, error) {
	if a.Head.Name != b.Head.Name {
		return Operation{}, &AccountMismatchError{Want: a.Head.Name, Got: b.Head.Name}
	}
	if a.Side == b.Side {
		return Operation{Side: a.Side, Head: a.Head, Amount: a.Amount + b.Amount}, nil
	}
	return newOperation(a.Side, a.Head, a.Amount-b.Amount), nil
}

// MergeAll left-folds Merge over ops. It fails with ErrEmptyMerge on an
// empty slice and with AccountMismatchError if the operations span more
// than one account.
func MergeAll(ops []Operation) (Operation, error) {
	if len(ops) == 0 {
		return Operation{}, ErrEmptyMerge
	}
	merged := ops[0]
	for _, op := range ops[1:] {
		var err error
		merged, err = Merge(merged, op)
		if err != nil {
			return Operation{}, err
		}
	}
	return merged, nil
}

// Uniq merges operations account by account, returning one operation per
// distinct account name in order of each account's first occurrence.
func Uniq(ops []Operation) []Operation {
	groups := make(map[string]Operation, len(ops))
	var order []string
	for _, op := range ops {
		prev, seen := groups[op.Head.Name]
		if !seen {
			order = append(order, op.Head.Name)
			groups[op.Head.Name] = op
			continue
		}
		// Same account name, so Merge cannot fail.
		merged, _ := Merge(prev, op)
		groups[op.Head.Name] = merged
	}
	result := make([]Operation, 0, len(order))
	for _, name := range order {
		result = append(result, groups[name])
	}
	return result
}

// SortOperations returns a new slice ordered by (debit before credit,
// account name ascending, amount descending). The comparator is a genuine
// tuple compare; the fixed-width string key some systems use for this
// mis-orders amounts past the padding width.
func SortOperations(ops []Operation) []Operation {
	sorted := make([]Operation, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Side != b.Side {
			return a.Side == SideDebit
		}
		if a.Head.Name != b.Head.Name {
			return a.Head.Name < b.Head.Name
		}
		return a.Amount > b.Amount
	})
	return sorted
}

package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/book"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// TermChecker tests whether a term exists in the chart of accounts.
type TermChecker interface {
	Exists(term string) bool
}

// ValidateLines enforces 6 invariants on a set of journal lines for a
// given year.
func ValidateLines(lines []Line, terms TermChecker, year int) []ValidationError {
	var errs []ValidationError

	// Group lines by entry.
	groups := make(map[string][]Line)
	var groupOrder []string
	for _, line := range lines {
		g := line.EntryGroup()
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], line)
	}

	// Invariant 1: Entry groups balance (sum(debits) == sum(credits) per group).
	for _, g := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, line := range groups[g] {
			switch line.Side {
			case book.SideDebit:
				totalDebit = totalDebit.Add(line.Amount)
			case book.SideCredit:
				totalCredit = totalCredit.Add(line.Amount)
			}
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	for _, line := range lines {
		// Invariant 2: Side is debit or credit and the amount is not negative.
		if !line.Side.Valid() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("unknown side %q", line.Side),
			})
		}
		if line.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("negative amount %s", line.Amount),
			})
		}

		// Invariant 3: Valid chart terms.
		if !terms.Exists(line.Term) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("unknown term %q", line.Term),
			})
		}

		// Invariant 4: Date within year.
		if line.Date.Year() != year {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("date %s not in %04d", line.Date.Format(dateFormat), year),
			})
		}

		// Invariant 6: Exact decimals — no more than 2 decimal places.
		hundred := decimal.NewFromInt(100)
		if !line.Amount.Mul(hundred).Equal(line.Amount.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   6,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", line.Amount),
			})
		}
	}

	// Invariant 5: Unique sequential IDs — contiguous 1..N at the entry level.
	seqSeen := make(map[int]bool)
	for _, line := range lines {
		_, seq, err := ParseEntryID(line.EntryID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		seqSeen[seq] = true
	}
	if len(seqSeen) > 0 {
		for i := 1; i <= len(seqSeen); i++ {
			if !seqSeen[i] {
				errs = append(errs, ValidationError{
					Invariant:   5,
					EntryID:     fmt.Sprintf("seq %d", i),
					Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
				})
			}
		}
	}

	return errs
}

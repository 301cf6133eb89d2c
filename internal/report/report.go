// Package report renders human-readable balance reports from a posted
// state. Amounts come out in major units with two decimal places.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/bookkeep-dev/bookkeep/internal/book"
	"github.com/bookkeep-dev/bookkeep/internal/money"
)

// Row is one account line in a trial balance.
type Row struct {
	Account string
	Class   string
	Debit   int64 // minor units, zero if the balance sits on the credit side
	Credit  int64 // minor units, zero if the balance sits on the debit side
}

// TrialBalanceRows computes the trial balance rows for one ledger, sorted
// by account name. A positive balance lands in its class's natural column;
// a negative balance lands in the opposite column.
func TrialBalanceRows(l book.Ledger) []Row {
	names := make([]string, 0, len(l.Accounts))
	for name := range l.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		acct := l.Accounts[name]
		row := Row{Account: name, Class: acct.Head.Class.ID}

		side := acct.Head.Class.NaturalBalance
		amount := acct.Balance
		if amount < 0 {
			side = side.Opposite()
			amount = -amount
		}
		if side == book.SideDebit {
			row.Debit = amount
		} else {
			row.Credit = amount
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteTrialBalance renders a trial balance for every ledger in the state,
// ledgers sorted by name, with per-ledger totals and a conservation note.
func WriteTrialBalance(w io.Writer, st book.State) error {
	names := make([]string, 0, len(st.Ledgers))
	for name := range st.Ledgers {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		ledger := st.Ledgers[name]
		fmt.Fprintf(tw, "Ledger: %s\n", name)
		fmt.Fprintln(tw, "ACCOUNT\tCLASS\tDEBIT\tCREDIT")

		var totalDebit, totalCredit int64
		for _, row := range TrialBalanceRows(ledger) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				row.Account, row.Class, column(row.Debit), column(row.Credit))
			totalDebit += row.Debit
			totalCredit += row.Credit
		}
		fmt.Fprintf(tw, "TOTAL\t\t%s\t%s\n", money.String(totalDebit), money.String(totalCredit))

		status := "in balance"
		if !ledger.InBalance() {
			status = "OUT OF BALANCE"
		}
		fmt.Fprintf(tw, "%s\n\n", status)
	}
	return tw.Flush()
}

func column(minor int64) string {
	if minor == 0 {
		return ""
	}
	return money.String(minor)
}

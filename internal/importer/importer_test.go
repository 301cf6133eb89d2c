package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/book"
)

const chaseCSV = `Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
DEBIT,01/03/2025,GITHUB INC,-10.00,ACH_DEBIT,990.00,
CREDIT,01/05/2025,STRIPE PAYOUT,250.00,ACH_CREDIT,1240.00,
`

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestChaseParse(t *testing.T) {
	txns, err := (&ChaseParser{}).Parse(strings.NewReader(chaseCSV))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "GITHUB INC", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(dec("-10.00")))
	assert.Equal(t, "ACH_DEBIT", txns[0].Type)
	assert.Equal(t, "chase_20250103_GITHUBINC", txns[0].Reference)

	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), txns[1].Date)
	assert.True(t, txns[1].Amount.Equal(dec("250.00")))
}

func TestChaseParseEmpty(t *testing.T) {
	txns, err := (&ChaseParser{}).Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParseBadAmount(t *testing.T) {
	bad := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,01/03/2025,X,ten,ACH_DEBIT,,\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("chase"))
	assert.NotNil(t, r.Get("CHASE"))
	assert.Nil(t, r.Get("unknown"))
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := DefaultRegistry()
	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func TestDraftLines(t *testing.T) {
	txns, err := (&ChaseParser{}).Parse(strings.NewReader(chaseCSV))
	require.NoError(t, err)

	mapping := Mapping{BankTerm: "bank", ExpenseTerm: "expenses", IncomeTerm: "sales"}
	lines := DraftLines(txns, mapping, 5)
	require.Len(t, lines, 4)

	// Money out: debit expenses, credit bank.
	assert.Equal(t, "2025-00005a", lines[0].EntryID)
	assert.Equal(t, "expenses", lines[0].Term)
	assert.Equal(t, book.SideDebit, lines[0].Side)
	assert.True(t, lines[0].Amount.Equal(dec("10.00")))
	assert.Equal(t, "bank", lines[1].Term)
	assert.Equal(t, book.SideCredit, lines[1].Side)

	// Money in: debit bank, credit sales.
	assert.Equal(t, "2025-00006a", lines[2].EntryID)
	assert.Equal(t, "bank", lines[2].Term)
	assert.Equal(t, book.SideDebit, lines[2].Side)
	assert.Equal(t, "sales", lines[3].Term)

	assert.Contains(t, lines[0].Memo, "GITHUB INC")
	assert.Contains(t, lines[0].Memo, "chase_20250103")
}

func TestDraftLinesSkipsZeroAmounts(t *testing.T) {
	txns := []Transaction{{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.Zero}}
	lines := DraftLines(txns, Mapping{BankTerm: "bank", ExpenseTerm: "expenses", IncomeTerm: "sales"}, 1)
	assert.Empty(t, lines)
}

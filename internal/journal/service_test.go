package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
)

func testService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	c := chart.NewService([]chart.Entry{
		{Term: "cash", Ledger: "acme", Account: "Cash", ClassID: "assets"},
		{Term: "deposits", Ledger: "acme", Account: "Customer Deposits", ClassID: "liabilities"},
		{Term: "user-receivable", Ledger: "user(123)", Account: "Receivable", ClassID: "assets"},
		{Term: "user-balance", Ledger: "user(123)", Account: "Balance", ClassID: "liabilities"},
	})
	return NewService(root, c), root
}

func TestAddDoubleCreatesJournalFile(t *testing.T) {
	svc, root := testService(t)

	entryID, err := svc.AddDouble(AddDoubleParams{
		Date:       date(2025, 1, 15),
		Memo:       "customer deposit",
		DebitTerm:  "cash",
		CreditTerm: "deposits",
		Amount:     dec("50.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-00001", entryID)

	data, err := os.ReadFile(filepath.Join(root, "2025", "journal.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), Header)
	assert.Contains(t, string(data), "2025-00001a")
	assert.Contains(t, string(data), "2025-00001b")
}

func TestAddDoubleSequencesEntries(t *testing.T) {
	svc, _ := testService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.AddDouble(AddDoubleParams{
			Date:       date(2025, 2, 1),
			DebitTerm:  "cash",
			CreditTerm: "deposits",
			Amount:     dec("10.00"),
		})
		require.NoError(t, err)
	}

	seq, err := svc.NextEntrySeq(2025)
	require.NoError(t, err)
	assert.Equal(t, 4, seq)
}

func TestAddDoubleRejectsUnknownTerm(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.AddDouble(AddDoubleParams{
		Date:       date(2025, 1, 15),
		DebitTerm:  "petty-cash",
		CreditTerm: "deposits",
		Amount:     dec("50.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "petty-cash")

	// Nothing written.
	lines, err := svc.ReadYear(2025)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadYearMissingFile(t *testing.T) {
	svc, _ := testService(t)
	lines, err := svc.ReadYear(1999)
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestReplay(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.AddDouble(AddDoubleParams{
		Date:       date(2025, 1, 15),
		DebitTerm:  "cash",
		CreditTerm: "deposits",
		Amount:     dec("80.00"),
	})
	require.NoError(t, err)
	_, err = svc.AddDouble(AddDoubleParams{
		Date:       date(2025, 1, 20),
		DebitTerm:  "cash",
		CreditTerm: "deposits",
		Amount:     dec("20.00"),
	})
	require.NoError(t, err)

	st, err := svc.Replay(2025)
	require.NoError(t, err)

	ledger := st.LedgerNamed("acme")
	assert.Equal(t, int64(10000), ledger.Accounts["Cash"].Balance)
	assert.Equal(t, int64(10000), ledger.Accounts["Customer Deposits"].Balance)
	assert.True(t, ledger.InBalance())
}

func TestReplayMultiLedgerEntry(t *testing.T) {
	svc, root := testService(t)

	// One entry spanning two ledgers, hand-written to the journal file.
	lines := []Line{
		{EntryID: "2025-00001a", Date: date(2025, 3, 1), Term: "cash", Side: "debit", Amount: dec("25.00")},
		{EntryID: "2025-00001b", Date: date(2025, 3, 1), Term: "deposits", Side: "credit", Amount: dec("25.00")},
		{EntryID: "2025-00001c", Date: date(2025, 3, 1), Term: "user-receivable", Side: "debit", Amount: dec("25.00")},
		{EntryID: "2025-00001d", Date: date(2025, 3, 1), Term: "user-balance", Side: "credit", Amount: dec("25.00")},
	}
	writeJournal(t, root, 2025, lines)

	st, err := svc.Replay(2025)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), st.LedgerNamed("acme").Accounts["Cash"].Balance)
	assert.Equal(t, int64(2500), st.LedgerNamed("user(123)").Accounts["Balance"].Balance)
}

func TestReplayRejectsInvalidJournal(t *testing.T) {
	svc, root := testService(t)

	lines := []Line{
		{EntryID: "2025-00001a", Date: date(2025, 3, 1), Term: "cash", Side: "debit", Amount: dec("25.00")},
		{EntryID: "2025-00001b", Date: date(2025, 3, 1), Term: "deposits", Side: "credit", Amount: dec("20.00")},
	}
	writeJournal(t, root, 2025, lines)

	_, err := svc.Replay(2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal invalid")
}

func TestReplayEmptyJournal(t *testing.T) {
	svc, _ := testService(t)
	st, err := svc.Replay(2025)
	require.NoError(t, err)
	assert.Empty(t, st.Ledgers)
}

func writeJournal(t *testing.T, root string, year int, lines []Line) {
	t.Helper()
	dir := filepath.Join(root, fmt.Sprintf("%04d", year))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	f, err := os.Create(filepath.Join(dir, "journal.csv"))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, WriteLines(f, lines))
}

package auditlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		Command:   "balances",
		Year:      2025,
		Entries:   12,
		Ledgers:   2,
		Balanced:  true,
	}
}

func TestMarshalUnmarshalEntry(t *testing.T) {
	e := sampleEntry()
	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalEntryBadFields(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "few"})
	assert.Error(t, err)

	row := MarshalEntry(sampleEntry())
	row[colYear] = "not-a-year"
	_, err = UnmarshalEntry(row)
	assert.Error(t, err)
}

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, Append(root, []Entry{sampleEntry()}))

	second := sampleEntry()
	second.Command = "check"
	second.Balanced = false
	require.NoError(t, Append(root, []Entry{second}))

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "balances", entries[0].Command)
	assert.Equal(t, "check", entries[1].Command)
	assert.False(t, entries[1].Balanced)
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

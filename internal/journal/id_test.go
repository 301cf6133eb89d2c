package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryID(t *testing.T) {
	assert.Equal(t, "2025-00001", FormatEntryID(2025, 1))
	assert.Equal(t, "2025-00042", FormatEntryID(2025, 42))
}

func TestFormatLegID(t *testing.T) {
	assert.Equal(t, "2025-00001a", FormatLegID("2025-00001", 0))
	assert.Equal(t, "2025-00001c", FormatLegID("2025-00001", 2))
}

func TestParseEntryID(t *testing.T) {
	tests := []struct {
		id   string
		year int
		seq  int
	}{
		{"2025-00001", 2025, 1},
		{"2025-00042a", 2025, 42},
		{"2024-00999b", 2024, 999},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			year, seq, err := ParseEntryID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.seq, seq)
		})
	}
}

func TestParseEntryIDInvalid(t *testing.T) {
	for _, id := range []string{"", "2025", "abc-def", "2025-xyz"} {
		t.Run(id, func(t *testing.T) {
			_, _, err := ParseEntryID(id)
			assert.Error(t, err)
		})
	}
}

func TestEntryGroup(t *testing.T) {
	tests := []struct {
		legID string
		want  string
	}{
		{"2025-00001a", "2025-00001"},
		{"2025-00001b", "2025-00001"},
		{"2025-00001", "2025-00001"},
		{"2025-00099abc", "2025-00099"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EntryGroup(tt.legID), "EntryGroup(%q)", tt.legID)
	}
}

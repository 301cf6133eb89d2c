package journal

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns an entry ID like "2025-00042".
func FormatEntryID(year, seq int) string {
	return fmt.Sprintf("%04d-%05d", year, seq)
}

// FormatLegID returns a leg ID like "2025-00042a" (leg 0='a', 1='b', etc.).
func FormatLegID(entryID string, leg int) string {
	return entryID + string(rune('a'+leg))
}

// ParseEntryID parses "2025-00042" (with or without a leg suffix) into
// year and sequence.
func ParseEntryID(id string) (year, seq int, err error) {
	base := EntryGroup(id)

	parts := strings.SplitN(base, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in entry ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}

	return year, seq, nil
}

// EntryGroup strips the leg suffix from a leg ID.
// "2025-00042a" -> "2025-00042"
func EntryGroup(legID string) string {
	i := len(legID)
	for i > 0 && legID[i-1] >= 'a' && legID[i-1] <= 'z' {
		i--
	}
	return legID[:i]
}

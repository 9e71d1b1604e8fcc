package dedup

import (
	"fmt"
	"strings"
)

// Level selects which repeated words are dropped
type Level int

const (
	// Consecutive drops a word equal to the last kept word
	Consecutive Level = iota
	// All drops a word kept anywhere earlier
	All
)

func (l Level) String() string {
	switch l {
	case Consecutive:
		return "consecutive"
	case All:
		return "all"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps "consecutive" or "all" (case-insensitive) to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "consecutive":
		return Consecutive, nil
	case "all":
		return All, nil
	}
	return Consecutive, fmt.Errorf("unknown deduplication level %q (want consecutive or all)", s)
}

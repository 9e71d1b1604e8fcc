package merger

import (
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/transcript-merger/internal/errors"
	"github.com/nguyentantai21042004/transcript-merger/internal/progress"
)

// ErrEmptyInput is returned when there are no lines to merge
const ErrEmptyInput = "Input file is empty"

// Merge starts from the first line and, for every following line, appends only
// the part that does not repeat the tail of the line before it. Lines that share
// no overlap are joined with a single space. The tracker receives one tick per
// line after the first.
func (m *implMerger) Merge(lines []string, tracker progress.Tracker) (string, error) {
	if len(lines) == 0 {
		return "", errors.New(errors.ErrInvalidInput, ErrEmptyInput)
	}
	if tracker == nil {
		tracker = progress.Nop()
	}

	var out strings.Builder
	out.WriteString(lines[0])

	previous := []rune(lines[0])
	last := lastRune(previous)

	for _, line := range lines[1:] {
		current := []rune(line)
		remainder := current[overlap(previous, current):]

		if len(remainder) > 0 {
			// a line with no overlap starts a new word
			if len(remainder) == len(current) && out.Len() > 0 && !unicode.IsSpace(last) && !unicode.IsSpace(remainder[0]) {
				out.WriteByte(' ')
			}
			out.WriteString(string(remainder))
			last = remainder[len(remainder)-1]
		}

		previous = current
		tracker.Increment()
	}

	return out.String(), nil
}

func lastRune(rs []rune) rune {
	if len(rs) == 0 {
		return 0
	}
	return rs[len(rs)-1]
}

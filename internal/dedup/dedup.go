package dedup

import (
	"strings"

	"github.com/nguyentantai21042004/transcript-merger/internal/errors"
	"github.com/nguyentantai21042004/transcript-merger/internal/progress"
)

// ErrEmptyInput is the message of the error returned for an empty word list
const ErrEmptyInput = "Input vector must not be empty"

// Deduplicate keeps words in their original order, dropping repeats according
// to the configured level, and joins the result with single spaces. The
// tracker gets one tick per input word and a final Finish.
func (d *implDeduplicator) Deduplicate(words []string, tracker progress.Tracker) (string, error) {
	if len(words) == 0 {
		d.handleError(ErrEmptyInput)
		return "", errors.New(errors.ErrInvalidInput, ErrEmptyInput)
	}
	if tracker == nil {
		tracker = progress.Nop()
	}

	result := make([]string, 0, len(words))
	var seen map[string]struct{}
	if d.level == All {
		seen = make(map[string]struct{}, len(words))
	}

	for _, word := range words {
		switch d.level {
		case All:
			if _, ok := seen[word]; !ok {
				result = append(result, word)
				seen[word] = struct{}{}
			}
		default:
			if len(result) == 0 || result[len(result)-1] != word {
				result = append(result, word)
			}
		}
		tracker.Increment()
	}

	tracker.Finish()
	return strings.Join(result, " "), nil
}

func (d *implDeduplicator) handleError(message string) {
	if d.errorHandler != nil {
		d.errorHandler(message)
	}
}

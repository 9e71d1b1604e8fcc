package dedup

import "github.com/nguyentantai21042004/transcript-merger/internal/progress"

// Deduplicator filters repeated words out of a token sequence
type Deduplicator interface {
	Deduplicate(words []string, tracker progress.Tracker) (string, error)
}

// ErrorHandler is notified with the message of every failure before the error
// is returned. It cannot change the returned error.
type ErrorHandler func(message string)

package merger

import "github.com/nguyentantai21042004/transcript-merger/internal/progress"

// Merger splices consecutive overlapping transcript lines into one string
type Merger interface {
	Merge(lines []string, tracker progress.Tracker) (string, error)
}

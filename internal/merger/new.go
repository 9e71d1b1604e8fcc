package merger

type implMerger struct{}

// New creates a new Merger instance
func New() Merger {
	return &implMerger{}
}

package progress

// Tracker receives tick and completion signals from the merge and dedup steps.
// Implementations are purely observational and must not affect results.
type Tracker interface {
	Increment()
	Finish()
}

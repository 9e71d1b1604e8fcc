package progress

import "sync"

// Recorder counts the signals it receives. Safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	increments int
	finishes   int
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Increment() {
	r.mu.Lock()
	r.increments++
	r.mu.Unlock()
}

func (r *Recorder) Finish() {
	r.mu.Lock()
	r.finishes++
	r.mu.Unlock()
}

// Increments returns how many ticks were recorded
func (r *Recorder) Increments() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.increments
}

// Finishes returns how many completion signals were recorded
func (r *Recorder) Finishes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finishes
}

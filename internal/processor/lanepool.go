package processor

import "context"

// lanePool hands out progress lane indices so that each running worker
// reports on its own lane
type lanePool struct {
	ch chan int
}

// newLanePool creates a pool holding lanes 0..n-1
func newLanePool(n int) *lanePool {
	ch := make(chan int, n)
	for i := 0; i < n; i++ {
		ch <- i
	}
	return &lanePool{ch: ch}
}

// acquire takes a free lane, blocking until one is released
func (s *lanePool) acquire(ctx context.Context) (int, error) {
	select {
	case lane := <-s.ch:
		return lane, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// release returns a lane to the pool
func (s *lanePool) release(lane int) {
	s.ch <- lane
}

package progress

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/pterm/pterm"
)

// Lanes tracks independent per-worker counters. Each lane's counter only
// increases; there is no ordering between lanes.
type Lanes struct {
	counts []atomic.Int64

	mu    sync.Mutex
	multi *pterm.MultiPrinter
	bars  []*pterm.ProgressbarPrinter
}

// NewLanes creates n headless lanes
func NewLanes(n int) *Lanes {
	if n < 1 {
		n = 1
	}
	return &Lanes{counts: make([]atomic.Int64, n)}
}

// Render draws one bar per lane on out, each sized to perLane ticks
func (l *Lanes) Render(out io.Writer, title string, perLane int) error {
	if perLane < 1 {
		perLane = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	multi := pterm.DefaultMultiPrinter.WithWriter(out)
	bars := make([]*pterm.ProgressbarPrinter, len(l.counts))
	for i := range bars {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(perLane).
			WithTitle(title).
			WithWriter(multi.NewWriter()).
			WithShowCount(true).
			Start()
		if err != nil {
			return err
		}
		bars[i] = bar
	}
	if _, err := multi.Start(); err != nil {
		return err
	}

	l.multi = multi
	l.bars = bars
	return nil
}

// Len returns the number of lanes
func (l *Lanes) Len() int {
	return len(l.counts)
}

// Lane returns the Tracker for lane i. Finish on a lane tracker is a no-op;
// call Lanes.Finish once all workers are done.
func (l *Lanes) Lane(i int) Tracker {
	return laneTracker{lanes: l, index: i}
}

// Count returns the ticks recorded on lane i
func (l *Lanes) Count(i int) int64 {
	return l.counts[i].Load()
}

// Total returns the ticks recorded across all lanes
func (l *Lanes) Total() int64 {
	var total int64
	for i := range l.counts {
		total += l.counts[i].Load()
	}
	return total
}

// Finish stops any rendered bars
func (l *Lanes) Finish() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, bar := range l.bars {
		_, _ = bar.Stop()
	}
	if l.multi != nil {
		_, _ = l.multi.Stop()
	}
	l.bars = nil
	l.multi = nil
}

func (l *Lanes) tick(i int) {
	l.counts[i].Add(1)

	l.mu.Lock()
	defer l.mu.Unlock()
	if i < len(l.bars) && l.bars[i].Current < l.bars[i].Total {
		l.bars[i].Increment()
	}
}

type laneTracker struct {
	lanes *Lanes
	index int
}

func (t laneTracker) Increment() { t.lanes.tick(t.index) }
func (t laneTracker) Finish()    {}

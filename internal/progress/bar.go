package progress

import (
	"io"
	"sync"

	"github.com/pterm/pterm"
)

const (
	// LineMergingTitle labels the bar fed by the line merger
	LineMergingTitle = "Merging lines"
	// WordDeduplicationTitle labels the bar fed by the word deduplicator
	WordDeduplicationTitle = "Deduplicating words"
	// DeduplicationComplete is shown when the dedup bar finishes
	DeduplicationComplete = "Deduplication complete"
)

// Bar renders ticks as a terminal progress bar
type Bar struct {
	mu      sync.Mutex
	printer *pterm.ProgressbarPrinter
	done    string
	stopped bool
}

// NewBar starts a progress bar with the given title and total, writing to out.
// doneMessage replaces the title once Finish is called; empty keeps the title.
func NewBar(out io.Writer, title string, total int, doneMessage string) (*Bar, error) {
	if total < 1 {
		total = 1
	}

	printer, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithWriter(out).
		WithShowElapsedTime(true).
		WithShowCount(true).
		Start()
	if err != nil {
		return nil, err
	}

	return &Bar{printer: printer, done: doneMessage}, nil
}

func (b *Bar) Increment() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped || b.printer.Current >= b.printer.Total {
		return
	}
	b.printer.Increment()
}

func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}
	if b.done != "" {
		b.printer.UpdateTitle(b.done)
	}
	_, _ = b.printer.Stop()
	b.stopped = true
}

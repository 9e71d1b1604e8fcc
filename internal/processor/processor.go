package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-merger/internal/dedup"
	"github.com/nguyentantai21042004/transcript-merger/internal/progress"
)

// Process orchestrates the merge pipeline for a single transcript
func (p *implProcessor) Process(ctx context.Context, inputPath, outputPath string) error {
	return p.run(ctx, inputPath, outputPath, p.progressOut != nil)
}

// run reads, merges, deduplicates and writes one transcript. Any failure stops
// the pipeline before the output file is touched, except a failing write.
func (p *implProcessor) run(ctx context.Context, inputPath, outputPath string, bars bool) error {
	startTime := time.Now()
	p.logger.Info(ctx, "Merging transcript: %s", inputPath)

	lines, err := p.reader.ReadLines(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	p.logger.Debug(ctx, "Read %d lines from %s", len(lines), inputPath)

	lineTracker := p.newTracker(ctx, bars, progress.LineMergingTitle, len(lines)-1, "")
	merged, err := p.merger.Merge(lines, lineTracker)
	lineTracker.Finish()
	if err != nil {
		return fmt.Errorf("merge lines: %w", err)
	}

	words := strings.Fields(merged)
	p.logger.Debug(ctx, "Merged into %d characters, %d words", len(merged), len(words))

	wordTracker := p.newTracker(ctx, bars, progress.WordDeduplicationTitle, len(words), progress.DeduplicationComplete)
	text, err := p.deduplicate(ctx, words, wordTracker)
	if err != nil {
		return err
	}

	if err := p.writer.Write(ctx, outputPath, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.logger.Info(ctx, "Wrote %s (%d words kept of %d, dedup=%s) in %s",
		outputPath, len(strings.Fields(text)), len(words), p.level, time.Since(startTime))
	return nil
}

func (p *implProcessor) deduplicate(ctx context.Context, words []string, tracker progress.Tracker) (string, error) {
	d := dedup.New(p.level, dedup.WithErrorHandler(func(msg string) {
		p.logger.Error(ctx, "Deduplication failed: %s", msg)
	}))

	text, err := d.Deduplicate(words, tracker)
	if err != nil {
		tracker.Finish()
		return "", fmt.Errorf("deduplicate words: %w", err)
	}
	return text, nil
}

// newTracker returns a terminal bar when bars are wanted, else a no-op
func (p *implProcessor) newTracker(ctx context.Context, bars bool, title string, total int, done string) progress.Tracker {
	if !bars || p.progressOut == nil {
		return progress.Nop()
	}

	bar, err := progress.NewBar(p.progressOut, title, total, done)
	if err != nil {
		p.logger.Warn(ctx, "Progress bar unavailable: %v", err)
		return progress.Nop()
	}
	return bar
}

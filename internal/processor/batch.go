package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/transcript-merger/internal/progress"
)

// ProcessDir merges each transcript in inputDir independently, running up to
// performance.max_concurrent at once. The first failure cancels the files that
// have not started yet and is returned.
func (p *implProcessor) ProcessDir(ctx context.Context, inputDir, outputDir string) error {
	files, err := p.discoverTranscripts(inputDir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		p.logger.Info(ctx, "No transcripts found in %s", inputDir)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	workers := min(p.cfg.Performance.MaxConcurrent, len(files))
	p.logger.Info(ctx, "Found %d transcripts, merging with %d workers", len(files), workers)

	lanes := progress.NewLanes(workers)
	if p.progressOut != nil {
		if err := lanes.Render(p.progressOut, "Merging transcripts", len(files)); err != nil {
			p.logger.Warn(ctx, "Progress bars unavailable: %v", err)
		}
	}
	defer lanes.Finish()

	pool := newLanePool(workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			lane, err := pool.acquire(gctx)
			if err != nil {
				return err
			}
			defer pool.release(lane)

			p.logger.Info(gctx, "[%d/%d] Merging: %s", i+1, len(files), filepath.Base(path))
			if err := p.run(gctx, path, p.outputPathFor(path, outputDir), false); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}

			lanes.Lane(lane).Increment()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	p.logger.Info(ctx, "Batch complete: %d transcripts merged into %s", lanes.Total(), outputDir)
	return nil
}

// outputPathFor derives <outputDir>/<base><suffix><ext> for a transcript
func (p *implProcessor) outputPathFor(inputPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outputDir, base+p.cfg.Output.Suffix+p.writer.Ext())
}

// discoverTranscripts lists transcripts in dir, sorted, skipping hidden files
// and files this tool produced
func (p *implProcessor) discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !p.cfg.IsTranscript(name) {
			continue
		}
		if strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), p.cfg.Output.Suffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, nil
}

package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ProcessNew merges a transcript that appeared in the watched directory into
// paths.output, then moves the source to paths.archived when one is set
func (p *implProcessor) ProcessNew(ctx context.Context, inputPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := p.run(ctx, inputPath, p.outputPathFor(inputPath, p.cfg.Paths.Output), false); err != nil {
		return err
	}

	if p.cfg.Paths.Archived == "" {
		return nil
	}
	if err := p.moveToArchived(ctx, inputPath); err != nil {
		p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
	}
	return nil
}

// moveToArchived moves a processed transcript out of the watched directory
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	p.logger.Info(ctx, "Archiving transcript: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-merger/internal/config"
	"github.com/nguyentantai21042004/transcript-merger/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Merge transcripts as they appear in paths.input",
	Long: `watch monitors paths.input from the config file. Each new transcript is
merged into paths.output and, when paths.archived is set, moved there afterwards.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	// bars from concurrent merges would interleave
	noProgress = true

	cfg, log, proc, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidatePaths(); err != nil {
		return err
	}
	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	w, err := watcher.New(cfg.Paths.Input, cfg.IsTranscript, proc.ProcessNew, log.With("watcher"), cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "Watching %s, output: %s. Press Ctrl+C to stop", cfg.Paths.Input, cfg.Paths.Output)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil && err != context.Canceled {
			return fmt.Errorf("watcher: %w", err)
		}
	}

	log.Info(ctx, "Transcript watcher stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Paths.Input, cfg.Paths.Output}
	if cfg.Paths.Archived != "" {
		dirs = append(dirs, cfg.Paths.Archived)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

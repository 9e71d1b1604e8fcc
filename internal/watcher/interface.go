package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles a newly created file; errors are logged, not fatal
type EventHandler func(ctx context.Context, filePath string) error

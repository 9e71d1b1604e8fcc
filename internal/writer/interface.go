package writer

import "context"

// Writer persists the final transcript text
type Writer interface {
	Write(ctx context.Context, path, text string) error
	// Ext is the file extension used when the output name is derived
	Ext() string
}

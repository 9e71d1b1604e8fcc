package writer

import (
	"context"
	"os"

	"github.com/nguyentantai21042004/transcript-merger/internal/errors"
)

type textWriter struct{}

// Write creates or truncates path and writes text followed by a newline
func (w *textWriter) Write(ctx context.Context, path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "create %s", path)
	}

	if _, err := f.WriteString(text + "\n"); err != nil {
		f.Close()
		return errors.Wrapf(err, errors.ErrIO, "write %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "close %s", path)
	}
	return nil
}

func (w *textWriter) Ext() string { return ".txt" }

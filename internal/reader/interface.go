package reader

import "context"

// Reader loads a transcript file as ordered lines
type Reader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

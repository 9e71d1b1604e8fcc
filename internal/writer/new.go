package writer

import "fmt"

// New returns the Writer for format ("text" or "docx")
func New(format string) (Writer, error) {
	switch format {
	case "", "text":
		return &textWriter{}, nil
	case "docx":
		return &docxWriter{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

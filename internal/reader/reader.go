package reader

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/nguyentantai21042004/transcript-merger/internal/errors"
)

var (
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[,.]\d{3}\s+-->\s+\d{2}:\d{2}:\d{2}[,.]\d{3}`)
	reSrtIndex = regexp.MustCompile(`^\d+$`)
)

// ReadLines reads the whole file at path and returns its lines. SubRip files
// (.srt) are reduced to their dialogue lines.
func (r *implReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "read %s", path)
	}
	if !utf8.Valid(data) {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s: stream did not contain valid UTF-8", path)
	}

	text := string(data)
	if r.normalize {
		text = norm.NFC.String(text)
	}

	lines := SplitLines(text)
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		lines = dialogueLines(lines)
	}
	return lines, nil
}

// SplitLines splits on '\n', dropping one trailing '\r' per line. A final
// newline does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// dialogueLines strips SRT cue numbers, timestamps and blank separators
func dialogueLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
		if trimmed == "" || reSrtIndex.MatchString(trimmed) || reSrtTime.MatchString(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

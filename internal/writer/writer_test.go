package writer

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/transcript-merger/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		ext     string
		wantErr bool
	}{
		{"", ".txt", false},
		{"text", ".txt", false},
		{"docx", ".docx", false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w, err := New(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ext, w.Ext())
		})
	}
}

func TestTextWriterAppendsNewlineAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content\n"), 0644))

	w, _ := New("text")
	require.NoError(t, w.Write(context.Background(), path, "Hello there world"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello there world\n", string(data))
}

func TestTextWriterMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	w, _ := New("text")
	err := w.Write(context.Background(), path, "x")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrIO))
}

func TestDocxWriterContainsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.docx")

	w, _ := New("docx")
	require.NoError(t, w.Write(context.Background(), path, "Hello there world"))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		body = string(data)
	}

	assert.True(t, strings.Contains(body, "Hello there world"))
	assert.True(t, strings.Contains(body, "talk"))
}

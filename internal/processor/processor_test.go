package processor

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/transcript-merger/internal/config"
	"github.com/nguyentantai21042004/transcript-merger/internal/errors"
	"github.com/nguyentantai21042004/transcript-merger/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T, cfg *config.Config, opts ...Option) *implProcessor {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	p, err := New(cfg, logger.NewWithWriter("debug", io.Discard), opts...)
	require.NoError(t, err)
	return p.(*implProcessor)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewRejectsBadConfig(t *testing.T) {
	log := logger.NewWithWriter("info", io.Discard)

	_, err := New(&config.Config{Merge: config.MergeConfig{Dedup: "fuzzy"}, Output: config.OutputConfig{Format: "text"}}, log)
	assert.Error(t, err)

	_, err = New(&config.Config{Merge: config.MergeConfig{Dedup: "all"}, Output: config.OutputConfig{Format: "pdf"}}, log)
	assert.Error(t, err)
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name  string
		dedup string
		input string
		want  string
	}{
		{"overlapping lines", "consecutive", "Hello there\nthere world\n", "Hello there world\n"},
		{"consecutive keeps alternating", "consecutive", "hello world\nhello world again\n", "hello world again\n"},
		{"repeated words collapse", "consecutive", "the the cat\nsat sat\n", "the cat sat\n"},
		{"all drops every repeat", "all", "hello world\nfoo hello world\n", "hello world foo\n"},
		{"crlf input", "consecutive", "so I\r\nso I went\r\n", "so I went\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Merge.Dedup = tt.dedup
			p := newTestProcessor(t, cfg)

			dir := t.TempDir()
			in := writeFile(t, dir, "in.txt", tt.input)
			out := filepath.Join(dir, "out.txt")

			require.NoError(t, p.Process(context.Background(), in, out))
			assert.Equal(t, tt.want, readFile(t, out))
		})
	}
}

func TestProcessEmptyFile(t *testing.T) {
	p := newTestProcessor(t, nil)
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "")
	out := filepath.Join(dir, "out.txt")

	err := p.Process(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Input file is empty")
	assert.NoFileExists(t, out)
}

func TestProcessWhitespaceOnly(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	p, err := New(cfg, logger.NewWithWriter("debug", &buf))
	require.NoError(t, err)

	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "   \n\t\n")
	out := filepath.Join(dir, "out.txt")

	err = p.Process(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Input vector must not be empty")
	assert.Contains(t, buf.String(), "Deduplication failed")
	assert.NoFileExists(t, out)
}

func TestProcessMissingInput(t *testing.T) {
	p := newTestProcessor(t, nil)
	dir := t.TempDir()

	err := p.Process(context.Background(), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrIO))
}

func TestProcessUnwritableOutput(t *testing.T) {
	p := newTestProcessor(t, nil)
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "a b\n")

	err := p.Process(context.Background(), in, filepath.Join(dir, "no", "such", "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrIO))
}

func TestProcessWithProgressOutput(t *testing.T) {
	p := newTestProcessor(t, nil, WithProgress(io.Discard))
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "a b\nb c\nc d\n")
	out := filepath.Join(dir, "out.txt")

	require.NoError(t, p.Process(context.Background(), in, out))
	assert.Equal(t, "a b c d\n", readFile(t, out))
}

func TestProcessSRT(t *testing.T) {
	p := newTestProcessor(t, nil)
	dir := t.TempDir()
	in := writeFile(t, dir, "talk.srt", "1\n00:00:00,000 --> 00:00:01,000\nwelcome to\n\n2\n00:00:01,000 --> 00:00:02,000\nwelcome to the show\n")
	out := filepath.Join(dir, "out.txt")

	require.NoError(t, p.Process(context.Background(), in, out))
	assert.Equal(t, "welcome to the show\n", readFile(t, out))
}

func TestProcessDir(t *testing.T) {
	cfg := config.Default()
	cfg.Performance.MaxConcurrent = 3
	p := newTestProcessor(t, cfg, WithProgress(io.Discard))

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "merged")
	writeFile(t, in, "a.txt", "one two\ntwo three\n")
	writeFile(t, in, "b.txt", "foo\nbar\n")
	writeFile(t, in, "c.srt", "1\n00:00:00,000 --> 00:00:01,000\nhi there\n")
	writeFile(t, in, ".hidden.txt", "x\n")
	writeFile(t, in, "notes.md", "x\n")
	writeFile(t, in, "a.merged.txt", "already done\n")

	require.NoError(t, p.ProcessDir(context.Background(), in, out))

	assert.Equal(t, "one two three\n", readFile(t, filepath.Join(out, "a.merged.txt")))
	assert.Equal(t, "foo bar\n", readFile(t, filepath.Join(out, "b.merged.txt")))
	assert.Equal(t, "hi there\n", readFile(t, filepath.Join(out, "c.merged.txt")))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestProcessDirStopsOnFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Performance.MaxConcurrent = 1
	p := newTestProcessor(t, cfg)

	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, in, "a.txt", "")
	writeFile(t, in, "b.txt", "fine\n")

	err := p.ProcessDir(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "a.txt")
}

func TestProcessDirEmpty(t *testing.T) {
	p := newTestProcessor(t, nil)
	out := filepath.Join(t.TempDir(), "out")

	require.NoError(t, p.ProcessDir(context.Background(), t.TempDir(), out))
	assert.NoDirExists(t, out)
}

func TestProcessDirMissing(t *testing.T) {
	p := newTestProcessor(t, nil)
	assert.Error(t, p.ProcessDir(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir()))
}

func TestProcessNewArchives(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Input = filepath.Join(root, "input")
	cfg.Paths.Output = filepath.Join(root, "output")
	cfg.Paths.Archived = filepath.Join(root, "archived")
	cfg.Output.Format = config.FormatDocx
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0755))
	p := newTestProcessor(t, cfg)

	in := writeFile(t, cfg.Paths.Input, "talk.txt", "good morning\nmorning all\n")

	require.NoError(t, p.ProcessNew(context.Background(), in))

	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "talk.merged.docx"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Archived, "talk.txt"))
	assert.NoFileExists(t, in)
}

func TestProcessNewWithoutArchive(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Output = filepath.Join(root, "output")
	p := newTestProcessor(t, cfg)

	in := writeFile(t, root, "talk.txt", "x y\n")
	require.NoError(t, p.ProcessNew(context.Background(), in))

	assert.Equal(t, "x y\n", readFile(t, filepath.Join(cfg.Paths.Output, "talk.merged.txt")))
	assert.FileExists(t, in)
}

func TestLanePool(t *testing.T) {
	pool := newLanePool(2)
	ctx := context.Background()

	a, err := pool.acquire(ctx)
	require.NoError(t, err)
	b, err := pool.acquire(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = pool.acquire(cancelled)
	assert.ErrorIs(t, err, context.Canceled)

	pool.release(a)
	c, err := pool.acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

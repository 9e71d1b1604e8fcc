package processor

import (
	"io"

	"github.com/nguyentantai21042004/transcript-merger/internal/config"
	"github.com/nguyentantai21042004/transcript-merger/internal/dedup"
	"github.com/nguyentantai21042004/transcript-merger/internal/logger"
	"github.com/nguyentantai21042004/transcript-merger/internal/merger"
	"github.com/nguyentantai21042004/transcript-merger/internal/reader"
	"github.com/nguyentantai21042004/transcript-merger/internal/writer"
)

type implProcessor struct {
	cfg         *config.Config
	logger      logger.Logger
	reader      reader.Reader
	merger      merger.Merger
	level       dedup.Level
	writer      writer.Writer
	progressOut io.Writer
}

// Option configures a Processor
type Option func(*implProcessor)

// WithProgress draws progress bars on w. Without it the processor is headless.
func WithProgress(w io.Writer) Option {
	return func(p *implProcessor) {
		p.progressOut = w
	}
}

// New creates a new Processor instance
func New(cfg *config.Config, log logger.Logger, opts ...Option) (Processor, error) {
	level, err := dedup.ParseLevel(cfg.Merge.Dedup)
	if err != nil {
		return nil, err
	}

	w, err := writer.New(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	p := &implProcessor{
		cfg:    cfg,
		logger: log,
		reader: reader.New(cfg.Input.NormalizeUnicode),
		merger: merger.New(),
		level:  level,
		writer: w,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

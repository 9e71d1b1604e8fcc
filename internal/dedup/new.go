package dedup

type implDeduplicator struct {
	level        Level
	errorHandler ErrorHandler
}

// Option configures a Deduplicator
type Option func(*implDeduplicator)

// WithErrorHandler registers a hook called once per failure
func WithErrorHandler(h ErrorHandler) Option {
	return func(d *implDeduplicator) {
		d.errorHandler = h
	}
}

// New creates a Deduplicator for the given level
func New(level Level, opts ...Option) Deduplicator {
	d := &implDeduplicator{level: level}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

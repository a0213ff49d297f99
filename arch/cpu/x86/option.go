package x86

import "github.com/oisee/i8086dis/log"

// options holds Machine construction settings. Segment, interrupt and
// variable memory-size options from fuller x86 emulators are not
// applicable here: this package always models a flat, unsegmented 1MiB
// memory.
type options struct {
	logger *log.Logger
}

// Option configures a Machine at construction time.
type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches a logger used for out-of-bounds memory access
// diagnostics. Without one, Machine operates silently.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

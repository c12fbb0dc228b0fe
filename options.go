package embedgo

import "runtime"

type options struct {
	parallelism int
	logger      *Logger
}

// Option configures Ranker behavior.
type Option func(*options)

// WithParallelism configures the number of worker goroutines used to scan
// candidates. Values below 1 fall back to runtime.NumCPU().
//
// Each worker scans an independent partition of the candidate slice, so
// increasing parallelism never changes the result, only the wall time.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.parallelism = n
	}
}

// WithLogger configures the logger used for operation logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() *options {
	return &options{
		parallelism: runtime.NumCPU(),
		logger:      NoopLogger(),
	}
}

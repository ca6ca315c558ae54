package nqtree

import "log/slog"

const defaultName = "default"

type options struct {
	name        string
	logger      *slog.Logger
	parallelism int
	metrics     bool
}

// Option configures a Tree.
type Option func(o *options)

// WithName sets the tree name used as the log attribute and metric label.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger for debug records on rejection and subdivision.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSearchParallelism fans searches out across the root's children using at
// most n goroutines. Values below 2 search sequentially.
func WithSearchParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithMetrics enables Prometheus metrics for the tree.
func WithMetrics(enabled bool) Option {
	return func(o *options) { o.metrics = enabled }
}

func newOptions(opts []Option) options {
	o := options{
		name:        defaultName,
		logger:      slog.New(slog.DiscardHandler),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

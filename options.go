package modelgo

import (
	"github.com/hupe1980/modelgo/codec"
)

type options struct {
	codec   codec.Codec
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Open behavior.
//
// Options exist to avoid exploding the API surface with constructor
// variants; the zero configuration (default codec, noop logger, noop
// metrics) is fully functional.
type Option func(*options)

// WithCodec configures the codec used when re-serializing datasets.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for fetch/load operations.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics configures operational metrics collection.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

func newOptions(optFns []Option) *options {
	o := &options{
		codec:   codec.Default,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

package ring

import (
	"log/slog"

	"github.com/c360/ringbuffer/metric"
)

// Option configures a ring using the functional options pattern.
type Option[T any] func(*ringOptions[T])

// RejectCallback is called with the value of a Push that failed because the ring was full.
type RejectCallback[T any] func(item T)

type ringOptions[T any] struct {
	rejectCallback RejectCallback[T]
	logger         *slog.Logger

	// metricsReg is optional; when set the ring exports Prometheus metrics
	metricsReg metric.MetricsRegistrar

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string
}

// WithMetrics enables Prometheus metrics export for the ring.
// The option is ignored if registry is nil or prefix is empty.
func WithMetrics[T any](registry metric.MetricsRegistrar, prefix string) Option[T] {
	return func(opts *ringOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithRejectCallback sets a callback invoked synchronously, from inside Push,
// for every value rejected by a full ring.
func WithRejectCallback[T any](callback RejectCallback[T]) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.rejectCallback = callback
	}
}

// WithLogger makes the ring log construction and rejected pushes at debug level.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.logger = logger
	}
}

func applyOptions[T any](options ...Option[T]) *ringOptions[T] {
	opts := &ringOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}

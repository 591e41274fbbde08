package core

import (
	"github.com/go-logr/logr"

	"github.com/llm-d/llm-d-quantity-canon/internal/collector"
	"github.com/llm-d/llm-d-quantity-canon/internal/config"
	"github.com/llm-d/llm-d-quantity-canon/internal/prime"
)

type options struct {
	logger     *logr.Logger
	recorder   collector.Recorder
	cacheSize  int
	factorizer prime.Factorizer
	err        error
}

// Option customizes Build.
type Option func(*options)

func defaultOptions() options {
	return options{
		recorder:   collector.Noop{},
		cacheSize:  config.DefaultCacheSize,
		factorizer: prime.Default(),
	}
}

// WithLogger overrides the logger otherwise taken from the build context.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) { o.logger = &logger }
}

// WithMetrics records build and query events on r.
func WithMetrics(r collector.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithCacheSize bounds the convertibility memo cache. Zero disables it.
func WithCacheSize(size int) Option {
	return func(o *options) { o.cacheSize = size }
}

// WithFactorizer sets the factorizer used for integer literals.
func WithFactorizer(f prime.Factorizer) Option {
	return func(o *options) {
		if f != nil {
			o.factorizer = f
		}
	}
}

// WithSettings applies the cache size and factorizer of s. When metrics are
// disabled in s, events are discarded even if WithMetrics was given before.
func WithSettings(s config.Settings) Option {
	return func(o *options) {
		if err := s.Validate(); err != nil {
			o.err = err
			return
		}
		f, err := s.NewFactorizer()
		if err != nil {
			o.err = err
			return
		}
		o.factorizer = f
		o.cacheSize = s.CacheSize
		if !s.MetricsEnabled {
			o.recorder = collector.Noop{}
		}
	}
}

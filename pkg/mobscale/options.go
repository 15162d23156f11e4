package mobscale

import (
	"github.com/bft-labs/mobscale/pkg/dist"
	"github.com/bft-labs/mobscale/pkg/log"
)

// Option configures optional behavior of a Randomizer.
type Option func(*options)

type options struct {
	logger     log.Logger
	source     dist.Source
	sampler    dist.Sampler
	configPath string
	plugins    []Plugin
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets the logger. Debug output is additionally gated by the
// configuration's debug switch. Default: no output.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource replaces the random source. Default: a locked generator seeded
// from the configuration seed, or from the clock when the seed is zero.
func WithSource(src dist.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSampler overrides the sampler settings (default lambda, attempt cap).
func WithSampler(s dist.Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithConfigPath sets the file Reload reads.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithPlugin registers a plugin to be initialized when the Randomizer starts.
// Plugins are initialized in registration order and shut down in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

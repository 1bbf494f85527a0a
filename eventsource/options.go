package eventsource

import "github.com/kbukum/ssemock/logger"

// Config is the configuration object accepted at construction.
type Config struct {
	// WithCredentials reports whether the source presents itself as
	// credential-bearing. Defaults to false.
	WithCredentials bool `yaml:"with_credentials" mapstructure:"with_credentials"`
}

type options struct {
	config   Config
	registry *Registry
	log      *logger.Logger
}

// Option configures a MockEventSource at construction.
type Option func(*options)

// WithConfig applies a configuration object.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithCredentials sets the withCredentials flag.
func WithCredentials(enabled bool) Option {
	return func(o *options) {
		o.config.WithCredentials = enabled
	}
}

// WithRegistry records the source in r instead of Default.
// A nil registry leaves the source unregistered.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLogger sets the logger the source reports to.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

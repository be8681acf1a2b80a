package mimekit

import (
	"github.com/sirupsen/logrus"
)

// Option configures a Resolver
type Option func(*Options)

// Options contains all possible options for a Resolver
type Options struct {
	// Catalog is the set of known types; DefaultCatalog when nil
	Catalog *Catalog

	// Logger receives diagnostics for path resolution fallbacks
	Logger logrus.FieldLogger

	// MaxFileSize is the initial size ceiling for ByPath and ByReader
	MaxFileSize int64
}

// WithCatalog sets the catalog a Resolver consults
func WithCatalog(c *Catalog) Option {
	return func(o *Options) {
		o.Catalog = c
	}
}

// WithLogger sets the diagnostics sink
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxFileSize sets the initial size ceiling in bytes
func WithMaxFileSize(n int64) Option {
	return func(o *Options) {
		o.MaxFileSize = n
	}
}

func processOptions(opts ...Option) *Options {
	options := &Options{
		MaxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.Catalog == nil {
		options.Catalog = DefaultCatalog()
	}
	if options.Logger == nil {
		options.Logger = defaultLogger()
	}
	return options
}

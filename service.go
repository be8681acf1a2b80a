package mimekit

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/sirupsen/logrus"
)

// Global instance
var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
	defaultErr      error
)

// Builder provides a way to create Resolver instances with custom env prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Resolver using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Resolver using the builder's prefix
func (b *Builder) New() (*Resolver, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global Resolver. Without arguments the config is read
// from the environment. Only the first call has any effect. If the config is
// invalid the error is returned and the global Resolver uses defaults.
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
		}

		if defaultErr == nil {
			defaultResolver, defaultErr = New(cfg)
		}
		if defaultErr != nil {
			defaultResolver = NewResolver()
		}
	})

	return defaultErr
}

// New creates a new Resolver with given config
func New(cfg *Config) (*Resolver, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return NewResolver(
		WithLogger(logger.WithField("component", "mimekit")),
		WithMaxFileSize(cfg.MaxFileSize),
	), nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if cfg.MaxFileSize < 0 {
		return fmt.Errorf("max file size must not be negative: %d", cfg.MaxFileSize)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("unknown log level: %s", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format: %s", cfg.LogFormat)
	}
	return nil
}

// R returns the global Resolver, initializing it from the environment if needed
func R() *Resolver {
	_ = Init()
	return defaultResolver
}

// NewFromEnv creates instance from environment variables (convenience constructor)
func NewFromEnv() (*Resolver, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// InitFromEnv initializes the global instance from environment variables (convenience method)
func InitFromEnv() error {
	return Init()
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultResolver = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// ByName guesses a type from a file name using the global Resolver
func ByName(fileName string) Descriptor {
	return R().ByName(fileName)
}

// ByBytes detects a type from content using the global Resolver
func ByBytes(content []byte) Descriptor {
	return R().ByBytes(content)
}

// ByPath detects the type of a file using the global Resolver
func ByPath(path string) Descriptor {
	return R().ByPath(path)
}

// ByReader detects a type from a reader using the global Resolver
func ByReader(rd io.Reader) (Descriptor, error) {
	return R().ByReader(rd)
}

// Lookup finds a type by canonical name in the global Resolver's catalog
func Lookup(name string) (Descriptor, bool) {
	return R().Lookup(name)
}

// FromString finds a type by canonical name, defaulting to application/octet-stream
func FromString(name string) Descriptor {
	return R().FromString(name)
}

// SetMaxFileSize sets the size ceiling of the global Resolver
func SetMaxFileSize(n int64) {
	R().SetMaxFileSize(n)
}

// MaxFileSize returns the size ceiling of the global Resolver
func MaxFileSize() int64 {
	return R().MaxFileSize()
}

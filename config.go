package mimekit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Largest file ByPath will read for signature sniffing
	MaxFileSize int64 `env:"MIMEKIT_MAX_FILE_SIZE,default:20971520"` // 20MB default

	// Diagnostics
	LogLevel  string `env:"MIMEKIT_LOG_LEVEL,default:warn"`
	LogFormat string `env:"MIMEKIT_LOG_FORMAT,default:text"` // text or json
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

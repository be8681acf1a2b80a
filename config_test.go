package mimekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				MaxFileSize: 20971520,
				LogLevel:    "warn",
				LogFormat:   "text",
			},
		},
		{
			name: "custom size ceiling",
			envVars: map[string]string{
				"BEAVER_MIMEKIT_MAX_FILE_SIZE": "1048576",
			},
			want: Config{
				MaxFileSize: 1048576,
				LogLevel:    "warn",
				LogFormat:   "text",
			},
		},
		{
			name: "logging configuration",
			envVars: map[string]string{
				"BEAVER_MIMEKIT_LOG_LEVEL":  "debug",
				"BEAVER_MIMEKIT_LOG_FORMAT": "json",
			},
			want: Config{
				MaxFileSize: 20971520,
				LogLevel:    "debug",
				LogFormat:   "json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := GetConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

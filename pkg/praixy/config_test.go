package praixy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid config",
			config: &Config{
				BaseURL: "https://praixy.example.com",
				APIKey:  "valid-key",
				Timeout: 30 * time.Second,
			},
			wantError: false,
		},
		{
			name: "missing base URL",
			config: &Config{
				APIKey:  "valid-key",
				Timeout: 30 * time.Second,
			},
			wantError: true,
			errorMsg:  "base",
		},
		{
			name: "missing API key",
			config: &Config{
				BaseURL: "https://praixy.example.com",
				Timeout: 30 * time.Second,
			},
			wantError: true,
			errorMsg:  EnvAPIKey,
		},
		{
			name: "invalid URL scheme",
			config: &Config{
				BaseURL: "ftp://praixy.example.com",
				APIKey:  "valid-key",
				Timeout: 30 * time.Second,
			},
			wantError: true,
			errorMsg:  "scheme",
		},
		{
			name: "missing host",
			config: &Config{
				BaseURL: "https://",
				APIKey:  "valid-key",
				Timeout: 30 * time.Second,
			},
			wantError: true,
			errorMsg:  "host",
		},
		{
			name: "negative max retries",
			config: &Config{
				BaseURL:    "https://praixy.example.com",
				APIKey:     "valid-key",
				Timeout:    30 * time.Second,
				MaxRetries: -1,
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.MaxRetries, "retries must be opt-in")
	require.NotNil(t, cfg.TLSVerify)
	assert.True(t, *cfg.TLSVerify)
}

func TestConfig_NewHTTPClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 5 * time.Second

	client := cfg.NewHTTPClient()
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
}

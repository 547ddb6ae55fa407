package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "4000", cfg.HTTP.Port)
	assert.Equal(t, false, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.HTTP.CertFileName)
	assert.Equal(t, "key.pem", cfg.HTTP.PrivateKeyFileName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "personas", cfg.Database.Name)
	assert.Equal(t, false, cfg.Seed.Enable)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "4",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 4, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":                  "8080",
				"HTTP_ENABLE_HTTPS":          "true",
				"HTTP_CERT_FILE_NAME":        "custom.pem",
				"HTTP_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.HTTP.Port)
				assert.Equal(t, true, cfg.HTTP.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.HTTP.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.HTTP.PrivateKeyFileName)
			},
		},
		{
			name: "database config override",
			envVars: map[string]string{
				"DATABASE_URI":  "mongodb://mongo:27017",
				"DATABASE_NAME": "personas_test",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "mongodb://mongo:27017", cfg.Database.URI)
				assert.Equal(t, "personas_test", cfg.Database.Name)
			},
		},
		{
			name: "seed config override",
			envVars: map[string]string{
				"SEED_ENABLE": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, true, cfg.Seed.Enable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}

func TestNewConfig_InvalidValues(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_LEVEL", "not-a-number")

	_, err := NewConfig()
	require.Error(t, err)
}

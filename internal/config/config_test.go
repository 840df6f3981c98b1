package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "missing database url",
			env:     map[string]string{"JWT_SECRET": "s"},
			wantErr: "DATABASE_URL is not set",
		},
		{
			name:    "missing jwt secret",
			env:     map[string]string{"DATABASE_URL": "postgres://x"},
			wantErr: "JWT_SECRET is not set",
		},
		{
			name: "defaults applied",
			env: map[string]string{
				"DATABASE_URL": "postgres://x",
				"JWT_SECRET":   "s",
				"S3_ENDPOINT":  "http://localhost:9000",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, "us-east-1", cfg.S3Region)
				// public base URL falls back to the endpoint
				assert.Equal(t, "http://localhost:9000", cfg.S3PublicBaseURL)
			},
		},
		{
			name: "explicit values win",
			env: map[string]string{
				"DATABASE_URL":       "postgres://x",
				"JWT_SECRET":         "s",
				"PORT":               "3000",
				"S3_PUBLIC_BASE_URL": "https://cdn.example.com",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "3000", cfg.Port)
				assert.Equal(t, "https://cdn.example.com", cfg.S3PublicBaseURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"PORT", "DATABASE_URL", "JWT_SECRET", "S3_ENDPOINT", "S3_REGION", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_PUBLIC_BASE_URL"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access":  "a",
			"refresh": "r",
		},
		"rateLimit": map[string]any{
			"maxAttempts": 5,
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "camel case segment aligned with yaml key",
			key:  "SECRETKEY_ACCESS",
			want: "secretKey.access",
		},
		{
			name: "nested camel case leaf",
			key:  "RATELIMIT_MAXATTEMPTS",
			want: "rateLimit.maxAttempts",
		},
		{
			name: "segment missing from yaml keeps lowercase form",
			key:  "POSTGRES_SSLMODE_EXTRA",
			want: "postgres.sslMode.extra",
		},
		{
			name: "unknown root",
			key:  "UNKNOWN_KEY",
			want: "unknown.key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.key, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "maxattempts", normalizeToken("maxAttempts"))
	assert.Equal(t, "sslmode", normalizeToken("ssl-mode"))
	assert.Equal(t, "", normalizeToken("__"))
}

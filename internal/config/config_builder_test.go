package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_EnvWinsOverJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	jsonBody := `{
		"server": {
			"base_url": "https://json.example.com",
			"fingerprint": "JSONFINGERPRINT000000000000000000000000",
			"request_timeout": "10s"
		},
		"keys": { "private_key_path": "/json/key.asc" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	setEnvVars(t, map[string]string{
		"SERVER_BASE_URL": "https://env.example.com",
		"WRENCH_CONFIG":   p,
	})

	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	// env overrides json, json fills the rest
	assert.Equal(t, "https://env.example.com", cfg.Server.BaseURL)
	assert.Equal(t, "JSONFINGERPRINT000000000000000000000000", cfg.Server.Fingerprint)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/json/key.asc", cfg.Keys.PrivateKeyPath)
}

func TestGetClientConfig_DefaultsFillGaps(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_BASE_URL":       "https://vault.example.com",
		"SERVER_FINGERPRINT":    "0F96C8A0E5BE5222FF05FE1D8916C5E4E7D5B266",
		"KEYS_PRIVATE_KEY_PATH": "/keys/user.asc",
	})

	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3, cfg.Server.LoginRetries)
}

func TestGetClientConfig_PathOverrideBeatsEnvPath(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "override.json")
	jsonBody := `{
		"server": {
			"base_url": "https://override.example.com",
			"fingerprint": "OVERRIDEFP00000000000000000000000000000"
		},
		"keys": { "private_key_path": "/override/key.asc" }
	}`
	require.NoError(t, os.WriteFile(override, []byte(jsonBody), 0o600))

	setEnvVars(t, map[string]string{
		"WRENCH_CONFIG": filepath.Join(dir, "missing.json"),
	})

	cfg, err := GetClientConfig(override)
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", cfg.Server.BaseURL)
}

func TestGetClientConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name: "missing base url",
			env: map[string]string{
				"SERVER_FINGERPRINT":    "0F96C8A0E5BE5222FF05FE1D8916C5E4E7D5B266",
				"KEYS_PRIVATE_KEY_PATH": "/keys/user.asc",
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "base url without scheme",
			env: map[string]string{
				"SERVER_BASE_URL":       "vault.example.com",
				"SERVER_FINGERPRINT":    "0F96C8A0E5BE5222FF05FE1D8916C5E4E7D5B266",
				"KEYS_PRIVATE_KEY_PATH": "/keys/user.asc",
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "missing pinned fingerprint",
			env: map[string]string{
				"SERVER_BASE_URL":       "https://vault.example.com",
				"KEYS_PRIVATE_KEY_PATH": "/keys/user.asc",
			},
			wantErr: ErrNoServerFingerprint,
		},
		{
			name: "missing private key path",
			env: map[string]string{
				"SERVER_BASE_URL":    "https://vault.example.com",
				"SERVER_FINGERPRINT": "0F96C8A0E5BE5222FF05FE1D8916C5E4E7D5B266",
			},
			wantErr: ErrInvalidKeyConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			_, err := GetClientConfig("")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

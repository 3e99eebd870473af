package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"version": "1.0.1", "api_version": "1.0.0", "build_time": "2026-10-17", "log_level": "debug"},
		"auth": {"username": "patil", "password": "patil1995", "token_sign_key": "k", "token_issuer": "i", "token_duration": "45m"},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "15s", "shutdown_timeout": 2000000000},
		"upstream": {"base_url": "http://u", "timeout": "1s", "api_key": "a", "vs_currency": "usd"}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.1", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "patil", cfg.Auth.Username)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://u", cfg.Upstream.BaseURL)
	assert.Equal(t, time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "usd", cfg.Upstream.VsCurrency)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auth":`), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/coin-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validation on its own.
func validConfig() *StructuredConfig {
	cfg := defaults(models.NewAppBuildInfo("", "", ""))
	cfg.Auth.Username = "patil"
	cfg.Auth.Password = "patil1995"
	cfg.Auth.TokenSignKey = "secret"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because credentials and the sign key are mandatory.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies the merge priority: a value set by an
// earlier source is not replaced by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenIssuer: "from-env"}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "from-flags"}, Upstream: Upstream{VsCurrency: "usd"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.TokenIssuer)
	assert.Equal(t, "usd", cfg.Upstream.VsCurrency)
	assert.Equal(t, "patil", cfg.Auth.Username)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-username", "flag-user"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-user", b.configs[0].Auth.Username)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth":     map[string]any{"username": "json-user", "token_duration": "1h"},
		"upstream": map[string]any{"timeout": "3s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-user", b.configs[1].Auth.Username)
	assert.Equal(t, time.Hour, b.configs[1].Auth.TokenDuration)
	assert.Equal(t, 3*time.Second, b.configs[1].Upstream.Timeout)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{
		Username:     "patil",
		Password:     "patil1995",
		TokenSignKey: "secret",
	}})

	cfg, err := b.withDefaults(models.NewAppBuildInfo("", "", "")).build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultUpstreamURL, cfg.Upstream.BaseURL)
	assert.Equal(t, DefaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, DefaultVsCurrency, cfg.Upstream.VsCurrency)
	assert.Equal(t, DefaultAppVersion, cfg.App.Version)
	assert.Equal(t, "N/A", cfg.App.BuildTime)
}

func TestWithDefaults_UsesStampedBuildInfo(t *testing.T) {
	cfg := defaults(models.NewAppBuildInfo("2.3.4", "2026-10-01", "abc123"))

	assert.Equal(t, "2.3.4", cfg.App.Version)
	assert.Equal(t, "2026-10-01", cfg.App.BuildTime)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestFullChain_EnvOverridesJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"username":       "json-user",
			"password":       "json-pass",
			"token_sign_key": "json-key",
		},
	})
	t.Setenv("AUTH_USERNAME", "env-user")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", path}).
		withJSON().
		withDefaults(models.NewAppBuildInfo("", "", "")).
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-user", cfg.Auth.Username)
	assert.Equal(t, "json-pass", cfg.Auth.Password)
	assert.Equal(t, "json-key", cfg.Auth.TokenSignKey)
}

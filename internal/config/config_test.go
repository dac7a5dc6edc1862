package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"GO_ENV", "HTTP_PORT", "SHUTDOWN_TIMEOUT", "RECOMMEND_API_URL", "REQUEST_TIMEOUT",
	"CLIENT_RATE_LIMIT", "CLIENT_RATE_BURST", "GAME_URL", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:8080", cfg.RecommendAPIURL)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, 0.0, cfg.ClientRateLimit)
	assert.Equal(t, 1, cfg.ClientRateBurst)
	assert.Equal(t, "https://www.crazygames.com/", cfg.GameURL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":3000", cfg.Address())

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("RECOMMEND_API_URL", "http://recommender:8080")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("CLIENT_RATE_LIMIT", "2.5")
	t.Setenv("CLIENT_RATE_BURST", "4")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "http://recommender:8080", cfg.RecommendAPIURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2.5, cfg.ClientRateLimit)
	assert.Equal(t, 4, cfg.ClientRateBurst)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, so unset
	// the one we want to read from the file.
	os.Unsetenv("GAME_URL")
	t.Cleanup(func() { os.Unsetenv("GAME_URL") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GAME_URL=https://example.com/games\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/games", cfg.GameURL)
}

func TestLoadConfig_MissingEnvFileIsFine(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"HTTP_PORT":         "eighty",
		"REQUEST_TIMEOUT":   "soon",
		"CLIENT_RATE_LIMIT": "fast",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := LoadConfig("")
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	cfg.HTTPPort = 70000
	cfg.RecommendAPIURL = "localhost:8080"
	cfg.LogLevel = "loud"
	cfg.ClientRateBurst = 0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "RECOMMEND_API_URL")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "CLIENT_RATE_BURST")
}

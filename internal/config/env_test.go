package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/btf-bot/internal/boterr"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "secret")
	unsetenv(t, "CONFIG_PATH", "LOG_LEVEL", "LOG_FILE")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "secret", e.DiscordToken)
	assert.Equal(t, "conf.toml", e.ConfigPath)
	assert.Equal(t, "info", e.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("CONFIG_PATH", "/etc/btf/conf.toml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/var/log/btf.log")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/etc/btf/conf.toml", e.ConfigPath)
	assert.Equal(t, "debug", e.LogLevel)
	assert.Equal(t, "/var/log/btf.log", e.LogFile)
}

func TestLoadEnvMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := LoadEnv()
	require.Error(t, err)
	assert.True(t, boterr.Is(err, boterr.KindIO))
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

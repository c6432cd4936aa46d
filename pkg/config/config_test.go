package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	App   App   `mapstructure:"app"`
	API   API   `mapstructure:"api"`
	Redis Redis `mapstructure:"redis"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, "app:\n  name: warga\napi:\n  port: 9000\nredis:\n  enabled: true\n  host: redis\n")
	t.Setenv("API_PORT", "9100")

	var cfg sampleConfig
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "warga", cfg.App.Name)
	assert.Equal(t, 9100, cfg.API.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis", cfg.Redis.Host)
}

func TestLoadWithDefaults_MissingFile(t *testing.T) {
	var cfg sampleConfig
	err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"), map[string]interface{}{
		"app.version": "1.0.0",
		"api.port":    8080,
	}, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 8080, cfg.API.Port)
}

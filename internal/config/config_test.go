package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseshop/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CASESHOP_API_URL", "CASESHOP_STORAGE", "CASESHOP_REDIS_ADDR",
		"CASESHOP_TOAST_DURATION", "CASESHOP_API_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, config.DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, config.StorageFile, cfg.Storage)
	assert.Equal(t, 4*time.Second, cfg.ToastDuration)
	assert.Equal(t, filepath.Join(dir, "state"), cfg.StatePath())
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yml := "api_url: https://shop.example.com\nstorage: redis\nredis_addr: localhost:6379\ntoast_duration: 2s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com", cfg.APIURL)
	assert.Equal(t, config.StorageRedis, cfg.Storage)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2*time.Second, cfg.ToastDuration)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_url: https://file.example.com\n"), 0600))
	t.Setenv("CASESHOP_API_URL", "https://env.example.com")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_url: [oops"), 0600))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"defaults", func(c *config.Config) {}, false},
		{"empty url", func(c *config.Config) { c.APIURL = "" }, true},
		{"relative url", func(c *config.Config) { c.APIURL = "localhost" }, true},
		{"unknown storage", func(c *config.Config) { c.Storage = "sqlite" }, true},
		{"redis without addr", func(c *config.Config) { c.Storage = config.StorageRedis }, true},
		{"redis with addr", func(c *config.Config) {
			c.Storage = config.StorageRedis
			c.RedisAddr = "localhost:6379"
		}, false},
		{"zero toast duration", func(c *config.Config) { c.ToastDuration = 0 }, true},
		{"negative timeout", func(c *config.Config) { c.APITimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.New(t.TempDir())
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "caseshop"), config.DefaultConfigDir())
}

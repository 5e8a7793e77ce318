package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api/v1", cfg.APIURL)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 10, cfg.PageLimit)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://api.tybot.io/api/v1\npage_limit: 25\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.tybot.io/api/v1", cfg.APIURL)
	assert.Equal(t, 25, cfg.PageLimit)
	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.com\n"), 0600))

	t.Setenv("TYBOT_API_URL", "https://env.example.com")
	t.Setenv("TYBOT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [broken\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.APIURL = "https://api.tybot.io/api/v1"
	cfg.IdentityURL = "https://auth.tybot.io"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.APIURL, loaded.APIURL)
	assert.Equal(t, cfg.IdentityURL, loaded.IdentityURL)
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("api_url", "https://x.example.com"))
	v, err := cfg.Get("api_url")
	require.NoError(t, err)
	assert.Equal(t, "https://x.example.com", v)

	require.NoError(t, cfg.Set("page_limit", "50"))
	assert.Equal(t, 50, cfg.PageLimit)

	// Every documented key is gettable.
	for _, key := range Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, "key %s", key)
	}
}

func TestSet_Validation(t *testing.T) {
	cfg := Default()

	assert.Error(t, cfg.Set("format", "xml"))
	assert.Error(t, cfg.Set("page_limit", "zero"))
	assert.Error(t, cfg.Set("page_limit", "-3"))
	assert.Error(t, cfg.Set("no_such_key", "x"))

	_, err := cfg.Get("no_such_key")
	assert.Error(t, err)
}

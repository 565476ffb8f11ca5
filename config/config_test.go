package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "flatfile", cfg.Store.Type)
	assert.Equal(t, "users.txt", cfg.Store.Path)
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "atm.yaml")
	content := `
store:
  type: sqlite
  path: atm.db
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Type)
	assert.Equal(t, "atm.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "atm.json")
	content := `{"store": {"type": "flatfile", "path": "users.txt"}, "log": {"level": "warn"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "flatfile", cfg.Store.Type)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown store type", Config{Store: StoreConfig{Type: "redis", Path: "x"}}},
		{"missing path", Config{Store: StoreConfig{Type: "flatfile"}}},
		{"bad log level", Config{Store: StoreConfig{Type: "flatfile", Path: "x"}, Log: LogConfig{Level: "loud"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "atm.yaml")
	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

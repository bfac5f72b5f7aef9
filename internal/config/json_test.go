package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads fields from file given via -config", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"data_dir":      "/var/lib/nk",
			"database_file": "vault.db",
			"log_level":     "warn",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/var/lib/nk", cfg.DataDir)
		assert.Equal(t, "vault.db", cfg.DatabaseFile)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"log_level": "debug"})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, ".", cfg.DataDir)
		assert.Equal(t, "notes.db", cfg.DatabaseFile)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no flags means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DataDir: "keep", DatabaseFile: "keep.db", LogLevel: "error"}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.DataDir)
		assert.Equal(t, "keep.db", cfg.DatabaseFile)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

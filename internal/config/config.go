// Package config holds runtime settings for the notekeeper CLI, assembled
// from defaults, an optional JSON file, and command-line flags, in that
// order of precedence.
package config

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory holding the database file and the asset directory.
//   - DatabaseFile: database file name inside DataDir.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	DataDir      string
	DatabaseFile string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.DatabaseFile = "notes.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

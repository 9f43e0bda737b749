// Package config holds runtime settings for the shopctl CLI and their
// loading order: built-in defaults, then an optional JSON file, then
// command-line flags. Later sources take precedence over earlier ones;
// the flag overlay itself is applied by the CLI layer, which owns
// argument parsing.
package config

import "fmt"

// Config holds runtime settings for the shopctl CLI.
//
// Fields:
//   - DatabasePath: path of the SQLite database file.
//   - SessionFilePath: path of the local session token file.
//   - Verbose: emit debug-level log records.
type Config struct {
	DatabasePath    string
	SessionFilePath string
	Verbose         bool
}

// LoadDefaults populates c with the application defaults. The paths match
// the well-known locations the shop has always used: the database and the
// session artifact live next to the invocation's working directory.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "./app_data.sqlite3"
	c.SessionFilePath = ".tmp_auth"
	c.Verbose = false
}

// Load constructs a Config: defaults first, then (if jsonPath is non-empty)
// values from the JSON file overlaid on top. Flag values are applied later
// by the caller.
func Load(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if jsonPath != "" {
		if err := parseJson(cfg, jsonPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", jsonPath, err)
		}
	}
	return cfg, nil
}

package config

import (
	"encoding/json"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It is
// prefilled from the current Config before unmarshalling, so fields omitted
// from the file keep their earlier (default) values.
type JsonConfig struct {
	DatabasePath    string `json:"database_path"`
	SessionFilePath string `json:"session_file_path"`
	Verbose         bool   `json:"verbose"`
}

// parseJson overlays cfg with values loaded from the JSON file at path.
func parseJson(cfg *Config, path string) error {
	jc := JsonConfig{
		DatabasePath:    cfg.DatabasePath,
		SessionFilePath: cfg.SessionFilePath,
		Verbose:         cfg.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	cfg.DatabasePath = jc.DatabasePath
	cfg.SessionFilePath = jc.SessionFilePath
	cfg.Verbose = jc.Verbose
	return nil
}

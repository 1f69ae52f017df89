// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultResultsPath is where benchmark runs drop their evaluation document.
	defaultResultsPath = "data/eval_results.json"
	// defaultExportDir receives generated export files.
	defaultExportDir = "exports"
)

// Config represents the top-level application configuration.
type Config struct {
	ResultsFile string `json:"resultsFile,omitempty"`
	ExportDir   string `json:"exportDir,omitempty"`
	LogFile     string `json:"logFile,omitempty"`
	Debug       bool   `json:"debug"`
	ConfigPath  string `json:"-"`
}

// ResultsFilePath returns the evaluation-results document path, applying the
// default if not set.
func (c Config) ResultsFilePath() string {
	if path := strings.TrimSpace(c.ResultsFile); path != "" {
		return path
	}
	return defaultResultsPath
}

// ExportDirPath returns the directory export files are written to.
func (c Config) ExportDirPath() string {
	if dir := strings.TrimSpace(c.ExportDir); dir != "" {
		return dir
	}
	return defaultExportDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return "evalscope.log"
}

// Load reads the application configuration from the specified path. A missing
// file is not an error: every field has a usable default.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{ConfigPath: path}, nil
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

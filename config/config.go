/*
File    : pylox/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the driver's optional runtime configuration --
// REPL prompt text, banner toggle, history file location -- from a YAML
// file backed by gopkg.in/yaml.v3. A missing config file is not an
// error: Load falls back to Default().
package config

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// Config holds everything about the session the driver or REPL needs
// that isn't part of the language itself.
type Config struct {
	// Prompt is the string readline displays before each REPL line.
	Prompt string `yaml:"prompt"`
	// ShowBanner toggles the startup banner in REPL mode.
	ShowBanner bool `yaml:"show_banner"`
	// HistoryFile is where REPL line history persists between sessions.
	// Empty disables persistent history.
	HistoryFile string `yaml:"history_file"`
	// LogLevel is a juju/loggo level name ("INFO", "DEBUG", "WARNING", ...)
	// applied to every pylox logger when the REPL starts (file mode does
	// not load the config).
	LogLevel string `yaml:"log_level"`
}

// Default is the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Prompt:      "pylox> ",
		ShowBanner:  true,
		HistoryFile: "",
		LogLevel:    "WARNING",
	}
}

// Load reads a YAML config file at path. A path that does not exist
// returns Default() with no error, since running pylox without a config
// file is the common case; any other read or parse failure is annotated
// with juju/errors and returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Annotatef(err, "reading config file %q", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Annotatef(err, "parsing config file %q", path)
	}
	return cfg, nil
}

// Package config loads optional bom.yaml defaults for the CLI
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "bom.yaml"

// Config holds CLI defaults that can be set once per project instead of
// repeated as flags. Flags win over file values.
type Config struct {
	// PartsListName is the base file name, without extension, of the
	// catalog table inside a BOM folder.
	PartsListName string `yaml:"parts_list"`
	// Format selects the default report rendering: text, json or csv.
	Format string `yaml:"format"`
	// LogLevel sets the default log level.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in defaults, matching the layout conventions
// of the folder loaders.
func Default() Config {
	return Config{
		PartsListName: "Parts list",
		Format:        "text",
		LogLevel:      "info",
	}
}

// Load reads a config file over the defaults. An absent file is fine
// when the path was defaulted; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unknown format %q (want text, json or csv)", c.Format)
	}
	if c.PartsListName == "" {
		return fmt.Errorf("parts_list cannot be empty")
	}
	return nil
}

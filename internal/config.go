package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults loadable from a TOML file. Flags override
// whatever the file provides.
type Config struct {
	LineMax  int  `toml:"line_max"`  // tokens per row
	TotalMax int  `toml:"total_max"` // total slots in the grid
	NoColor  bool `toml:"no_color"`  // disable ANSI styling
}

// DefaultConfig returns the built-in defaults used when no config file
// exists.
func DefaultConfig() Config {
	return Config{
		LineMax:  10,
		TotalMax: 30,
	}
}

// ConfigPath returns the config file location: $PAPERCODER_CONFIG when set,
// otherwise <user config dir>/papercoder/config.toml.
func ConfigPath() string {
	if p := os.Getenv("PAPERCODER_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "papercoder", "config.toml")
}

// LoadConfig loads configuration from path, or from ConfigPath() when path
// is empty. A missing file is not an error: defaults are returned. A file
// that exists but fails to parse or validate is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if cfg.LineMax < 1 {
		return DefaultConfig(), fmt.Errorf("invalid config %s: line_max must be at least 1, got %d", path, cfg.LineMax)
	}
	if cfg.TotalMax < 1 {
		return DefaultConfig(), fmt.Errorf("invalid config %s: total_max must be at least 1, got %d", path, cfg.TotalMax)
	}
	return cfg, nil
}

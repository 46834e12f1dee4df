// Package config loads the optional jot.toml settings file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "jot.toml"

// Config holds the settings a user may persist instead of passing flags.
type Config struct {
	Format   string `toml:"format"`    // json, csv or yaml
	File     string `toml:"file"`      // backing file; empty means notes.<format>
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file"`  // rotate logs into this file instead of stderr
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Format:   "json",
		LogLevel: "info",
	}
}

// Load reads path over the defaults.
// A missing file yields the defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

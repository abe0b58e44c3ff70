// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config carries user defaults loaded from a TOML file. Flags the user sets
// explicitly always win; config only fills the gaps.
type Config struct {
	Output           string   `toml:"output"`
	Exclude          []string `toml:"exclude"`
	ChildrenRootType string   `toml:"children_root_type"`
	ParentsRootType  string   `toml:"parents_root_type"`
}

// DefaultPath returns the conventional config location
// (<user config dir>/gffq/config.toml), or "" when no config dir exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gffq", "config.toml")
}

// Load reads the config at path; an empty path falls back to DefaultPath.
// A missing file is not an error — it yields the zero Config.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return Config{}, nil
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Output = strings.TrimSpace(cfg.Output)
	cfg.ChildrenRootType = strings.TrimSpace(cfg.ChildrenRootType)
	cfg.ParentsRootType = strings.TrimSpace(cfg.ParentsRootType)
	return cfg, nil
}

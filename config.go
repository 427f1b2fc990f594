package lightsetups

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config relocates the plugin root and toggles debug logging. The
// directory names under the root ("light_setups", "previews") are part of
// the on-disk contract and are not configurable.
type Config struct {
	Root  string `yaml:"root"`
	Debug bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{Root: "."}
}

func (c Config) SetupsDir() string   { return filepath.Join(c.Root, setupsDirName) }
func (c Config) PreviewsDir() string { return filepath.Join(c.Root, previewsDirName) }

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	return cfg, nil
}

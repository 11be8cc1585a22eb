package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/fndecorate/internal/model"
)

// DefaultConfigFile is looked up in the working directory when no config is given.
const DefaultConfigFile = ".fndecorate.yaml"

// Config holds the defaults read from a project configuration file. Zero
// values mean "not set".
type Config struct {
	Parallel int      `yaml:"parallel"`
	Exclude  []string `yaml:"exclude"`
	Cache    string   `yaml:"cache"`
	Verbose  bool     `yaml:"verbose"`
}

// ConfigLoader reads project configuration.
type ConfigLoader interface {
	// Load parses the file at path. A missing file is only an error when
	// required is set.
	Load(path m.Path, required bool) (Config, error)
}

type yamlConfigLoader struct{}

// NewConfigLoader constructs a ConfigLoader for YAML files.
func NewConfigLoader() ConfigLoader {
	return &yamlConfigLoader{}
}

func (l *yamlConfigLoader) Load(path m.Path, required bool) (Config, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Parallel < 0 {
		return Config{}, fmt.Errorf("parse config %s: parallel must not be negative", path)
	}

	return cfg, nil
}

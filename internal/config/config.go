package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/beadplan/internal/compile"
	"github.com/jorge-barreto/beadplan/internal/plan"
)

// FileName is the project config looked up from the working directory upward.
const FileName = ".beadplan.yaml"

type Config struct {
	Tool            string  `yaml:"tool"`
	StateDir        string  `yaml:"state-dir"`
	JQ              string  `yaml:"jq"`
	IDLength        int     `yaml:"id-length"`
	IDSeparator     *string `yaml:"id-separator"`
	AllowUnresolved bool    `yaml:"allow-unresolved"`
}

// Default returns a validated config with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = Validate(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find walks up from dir looking for FileName. It returns "" when none exists.
func Find(dir string) (string, error) {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the explicit path when given, otherwise the nearest
// FileName above dir, otherwise the defaults.
func Resolve(explicit, dir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// CompileOptions maps the config onto compiler options.
func (c *Config) CompileOptions() compile.Options {
	return compile.Options{
		Tool:            c.Tool,
		StateDir:        c.StateDir,
		JQ:              c.JQ,
		IDs:             plan.IDRule{Length: c.IDLength, Separator: *c.IDSeparator},
		AllowUnresolved: c.AllowUnresolved,
	}
}

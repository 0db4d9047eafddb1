package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/example/azmodels/internal/logging"
)

// DefaultConfigFile is read from the working directory when --config is not
// given.
const DefaultConfigFile = ".azmodels.yml"

// Config holds the settings shared by every subcommand.
type Config struct {
	ConfigPath   string
	LogLevel     string
	LogFormat    string
	FixturesDir  string
	SchemaOutput string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	defaults := logging.DefaultConfig()
	return Config{
		LogLevel:  defaults.Level,
		LogFormat: string(defaults.Format),
	}
}

type fileConfig struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Fixtures struct {
		Dir string `yaml:"dir"`
	} `yaml:"fixtures"`
	Schema struct {
		Output string `yaml:"output"`
	} `yaml:"schema"`
}

// loadConfigFile applies the config file to config. Values set on the
// command line win over the file. A missing default file is not an error.
func loadConfigFile(config *Config, flags *pflag.FlagSet) error {
	path := config.ConfigPath
	if path == "" {
		path = DefaultConfigFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	set := func(name string, dst *string, value string) {
		if value == "" || (flags != nil && flags.Changed(name)) {
			return
		}
		*dst = value
	}
	set("log-level", &config.LogLevel, cfg.Log.Level)
	set("log-format", &config.LogFormat, cfg.Log.Format)
	set("fixtures", &config.FixturesDir, cfg.Fixtures.Dir)
	set("output", &config.SchemaOutput, cfg.Schema.Output)

	return nil
}

func (c Config) newLogger() (*zap.Logger, error) {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = logging.Format(c.LogFormat)
	return logging.NewLogger(cfg)
}

// fixturePath resolves a fixture argument. Paths that do not exist as given
// are looked up under the fixtures directory.
func (c Config) fixturePath(path string) string {
	if c.FixturesDir == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(c.FixturesDir, path)
}

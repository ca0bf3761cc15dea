// Package config provides configuration management for erpath using Viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/erpath/internal/errors"
	"github.com/thoreinstein/erpath/internal/paths"
	"github.com/thoreinstein/erpath/pkg/fileutil"
)

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config keys.
const (
	KeyVersion    = "version"
	KeyOutput     = "output"
	KeyInstallDir = "install_dir"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version    int    `mapstructure:"version" yaml:"version" json:"version" toml:"version"`
	Output     string `mapstructure:"output" yaml:"output" json:"output" toml:"output"`
	InstallDir string `mapstructure:"install_dir" yaml:"install_dir,omitempty" json:"install_dir,omitempty" toml:"install_dir,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output:  "text",
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("ERPATH")
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault(KeyVersion, d.Version)
	viper.SetDefault(KeyOutput, d.Output)
	viper.SetDefault(KeyInstallDir, d.InstallDir)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and returns
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file uses defaults.
		case path != "" && isNotExist(path):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Path returns the file the configuration was read from, or the default
// location when no file has been read.
func Path() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

// Save writes cfg to path as YAML, creating the parent directory.
func Save(path string, cfg *Config) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Wrap(errs[0], "validating config")
	}
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	return fileutil.AtomicWriteYAMLWithPerm(path, cfg, 0o600)
}

// Set updates a single key on cfg from its string form.
func Set(cfg *Config, key, value string) error {
	switch key {
	case KeyOutput:
		cfg.Output = value
	case KeyInstallDir:
		cfg.InstallDir = value
	default:
		return errors.Newf("unknown config key %q (settable: %s, %s)", key, KeyOutput, KeyInstallDir)
	}
	return nil
}

func isNotExist(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}

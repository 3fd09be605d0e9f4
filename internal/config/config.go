// Package config provides configuration management for myshorts using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jmwatte/myshorts/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "myshorts"

// Config represents the top-level configuration structure.
type Config struct {
	// Version is the config schema version.
	Version int `mapstructure:"version" yaml:"version"`

	// StorePath overrides the location of the shortcut document.
	// Empty means the default under the XDG data directory.
	StorePath string `mapstructure:"store_path" yaml:"store_path"`

	// Runner selects the evaluator for `run`: "shell" or "lua".
	Runner string `mapstructure:"runner" yaml:"runner"`

	// Shell overrides the shell binary used by the shell runner.
	Shell string `mapstructure:"shell" yaml:"shell"`

	// EnvFile is an optional dotenv file loaded into the environment of
	// executed shortcuts.
	EnvFile string `mapstructure:"env_file" yaml:"env_file"`

	// Backup holds backup retention settings.
	Backup BackupConfig `mapstructure:"backup" yaml:"backup"`
}

// BackupConfig contains settings for store-file backups.
type BackupConfig struct {
	// Keep is the number of backups retained per prune. Zero disables backups.
	Keep int `mapstructure:"keep" yaml:"keep"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("MYSHORTS")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("runner", "shell")
	viper.SetDefault("backup.keep", 5)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ResolveStorePath returns the configured store path, or the default.
func (c *Config) ResolveStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}
	return paths.StoreFile()
}

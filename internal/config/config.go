package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level trackdown configuration.
type Config struct {
	Input          string   `mapstructure:"input"`
	Extensions     []string `mapstructure:"extensions"`
	LimitThreshold float64  `mapstructure:"limit_threshold"`
	Output         Output   `mapstructure:"output"`
	Usage          Usage    `mapstructure:"usage"`
}

// Output defines output preferences.
type Output struct {
	Color  bool   `mapstructure:"color"`
	Format string `mapstructure:"format"`
}

// Usage defines the local usage-log preferences.
type Usage struct {
	Enabled bool `mapstructure:"enabled"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("input", DefaultInput)
	v.SetDefault("extensions", DefaultExtensions)
	v.SetDefault("limit_threshold", DefaultLimitThreshold)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.format", DefaultOutput.Format)
	v.SetDefault("usage.enabled", DefaultUsage.Enabled)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Expand paths.
	cfg.Input = expandPath(cfg.Input)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite usage database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}

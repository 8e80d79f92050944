package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gitprovider.dev/gitprovider/internal/output"
)

// EnvPrefix is the prefix of environment variable overrides
const EnvPrefix = "GITPROVIDER"

// Config holds all gitprovider settings
type Config struct {
	Git    GitConfig `mapstructure:"git"`
	Remote string    `mapstructure:"remote"`
	Branch string    `mapstructure:"branch"`
	Debug  bool      `mapstructure:"debug"`
	Log    LogConfig `mapstructure:"log"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// GitConfig controls how git is invoked
type GitConfig struct {
	Binary  string        `mapstructure:"binary"`
	Timeout time.Duration `mapstructure:"timeout"`
	Env     []string      `mapstructure:"env"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Output converts the log settings for the output package
func (l LogConfig) Output() output.LogConfig {
	return output.LogConfig{
		File:       l.File,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

func setDefaults(v *viper.Viper) {
	logDefaults := output.DefaultLogConfig()

	v.SetDefault("git.binary", "git")
	v.SetDefault("git.timeout", 5*time.Minute)
	v.SetDefault("git.env", []string{})
	v.SetDefault("remote", "origin")
	v.SetDefault("branch", "master")
	v.SetDefault("debug", false)
	v.SetDefault("log.file", logDefaults.File)
	v.SetDefault("log.max_size", logDefaults.MaxSize)
	v.SetDefault("log.max_backups", logDefaults.MaxBackups)
	v.SetDefault("log.max_age", logDefaults.MaxAge)
	v.SetDefault("log.compress", false)
}

// DefaultConfigDir returns ~/.gitprovider, or "" when the home directory is unknown
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gitprovider")
}

// Load reads the configuration. An explicit path must exist; without one the default
// config directory is searched and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if dir := DefaultConfigDir(); dir != "" {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would make every git invocation fail
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Git.Binary) == "" {
		return errors.New("git.binary must not be empty")
	}
	if c.Git.Timeout <= 0 {
		return fmt.Errorf("git.timeout must be positive, got %s", c.Git.Timeout)
	}
	return nil
}

// Package config provides configuration management for the telemetry-codec
// tool.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// DefaultTargetBits is the default per-command bit budget used for the
// pass/fail judgment. The codec itself imposes no limit; it only reports
// sizes for the caller to compare.
const DefaultTargetBits = 32

// Config holds all configuration for the application.
type Config struct {
	Codec   CodecConfig   `mapstructure:"codec"`
	Output  OutputConfig  `mapstructure:"output"`
	Storage StorageConfig `mapstructure:"storage"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
}

// CodecConfig holds code-generation configuration.
type CodecConfig struct {
	TargetBits  int    `mapstructure:"target_bits"`
	CommandFile string `mapstructure:"command_file"` // empty selects the built-in set
	CacheSize   int    `mapstructure:"cache_size"`
}

// OutputConfig holds report output configuration.
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	Compress bool   `mapstructure:"compress"`
}

// StorageConfig holds report archival configuration. Reports are archived
// to the configured backend in addition to the local output directory.
type StorageConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Type      string `mapstructure:"type"` // local or cos
	LocalPath string `mapstructure:"local_path"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Domain    string `mapstructure:"domain"`
	Scheme    string `mapstructure:"scheme"`
}

// HistoryConfig holds run-history database configuration.
type HistoryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Type     string `mapstructure:"type"` // sqlite, mysql or postgres
	Path     string `mapstructure:"path"` // sqlite database file
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	MaxConns int    `mapstructure:"max_conns"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"` // empty logs to stdout
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/telemetry-codec")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file anywhere on the search path; defaults apply.
		} else if os.IsNotExist(err) {
			// Explicit path that does not exist; defaults apply.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw content (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("codec.target_bits", DefaultTargetBits)
	v.SetDefault("codec.command_file", "")
	v.SetDefault("codec.cache_size", 256)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.compress", false)

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./archive")
	v.SetDefault("storage.scheme", "https")

	v.SetDefault("history.enabled", false)
	v.SetDefault("history.type", "sqlite")
	v.SetDefault("history.path", "./history.db")
	v.SetDefault("history.max_conns", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_path", "")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Codec.TargetBits < 1 {
		return fmt.Errorf("target bits must be at least 1")
	}
	if c.Codec.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output dir is required")
	}
	if c.Storage.Enabled {
		switch c.Storage.Type {
		case "", "local":
			if c.Storage.LocalPath == "" {
				return fmt.Errorf("storage local path is required")
			}
		case "cos":
			if c.Storage.Bucket == "" || c.Storage.Region == "" {
				return fmt.Errorf("storage bucket and region are required")
			}
			if c.Storage.SecretID == "" || c.Storage.SecretKey == "" {
				return fmt.Errorf("storage credentials are required")
			}
		default:
			return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
		}
	}
	if c.History.Enabled {
		switch c.History.Type {
		case "", "sqlite":
			if c.History.Path == "" {
				return fmt.Errorf("history database path is required")
			}
		case "mysql", "postgres", "postgresql":
			if c.History.Host == "" || c.History.Database == "" {
				return fmt.Errorf("history database host and name are required")
			}
		default:
			return fmt.Errorf("unsupported history database type: %s", c.History.Type)
		}
	}
	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist.
func (c *Config) EnsureOutputDir() error {
	return os.MkdirAll(c.Output.Dir, 0755)
}

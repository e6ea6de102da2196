package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// File and environment lookup
const (
	ConfigName = "yt-converter"
	ConfigType = "yaml"
	EnvPrefix  = "YTCONVERTER"
)

// Config keys shared by the config file, environment and flags
const (
	ConfigKeyServerURL      = "server.url"
	ConfigKeyPollInterval   = "poll.interval"
	ConfigKeyRequestTimeout = "http.timeout"
	ConfigKeyDownloadDir    = "download_dir"
	ConfigKeyLanguage       = "language"
)

// Default values
const (
	DefaultServerURL      = "http://localhost:5000"
	DefaultPollInterval   = 1000 * time.Millisecond
	DefaultRequestTimeout = 30 * time.Second
	DefaultLanguage       = "system"
)

// Config holds the startup configuration
type Config struct {
	ServerURL      string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	DownloadDir    string
	Language       string
}

// NewViper returns a viper instance with defaults and environment binding.
// YTCONVERTER_SERVER_URL overrides server.url and so on.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigKeyServerURL, DefaultServerURL)
	v.SetDefault(ConfigKeyPollInterval, DefaultPollInterval)
	v.SetDefault(ConfigKeyRequestTimeout, DefaultRequestTimeout)
	v.SetDefault(ConfigKeyDownloadDir, "")
	v.SetDefault(ConfigKeyLanguage, DefaultLanguage)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, or searches the working directory and
// the user config directory when path is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadInto(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// ReadInto reads the config file into v
func ReadInto(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, ConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// FromViper extracts and validates a Config
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ServerURL:      strings.TrimSpace(v.GetString(ConfigKeyServerURL)),
		PollInterval:   v.GetDuration(ConfigKeyPollInterval),
		RequestTimeout: v.GetDuration(ConfigKeyRequestTimeout),
		DownloadDir:    v.GetString(ConfigKeyDownloadDir),
		Language:       v.GetString(ConfigKeyLanguage),
	}

	if cfg.ServerURL == "" {
		return nil, errors.New("server url is required")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	return cfg, nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		ServerURL:      DefaultServerURL,
		PollInterval:   DefaultPollInterval,
		RequestTimeout: DefaultRequestTimeout,
		Language:       DefaultLanguage,
	}
}

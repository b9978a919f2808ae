package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API  APIConfig           `mapstructure:"api"`
	Log  LogConfig           `mapstructure:"log"`
	UI   UIConfig            `mapstructure:"ui"`
	Keys map[string][]string `mapstructure:"keys"`
}

// APIConfig holds registration endpoint settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartRoute string `mapstructure:"start_route"`
}

const envConfigPath = "SIGNUP_CONFIG"

// Load reads configuration from file and env. Env var overrides use prefix SIGNUP_.
// An empty path falls back to $SIGNUP_CONFIG, then ~/.config/signup/config.toml.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	v.SetConfigFile(ResolvePath(path))

	v.SetEnvPrefix("SIGNUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

// Default returns the built-in configuration without reading files or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	c.normalize()
	return c
}

// Save writes cfg to path (or the default location), creating the directory if needed.
func Save(cfg Config, path string) (string, error) {
	path = ResolvePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.start_route", cfg.UI.StartRoute)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// ResolvePath returns path, or $SIGNUP_CONFIG, or the default location.
func ResolvePath(path string) string {
	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path == "" {
		path = filepath.Join(homeDir(), ".config", "signup", "config.toml")
	}
	return path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("log.path", filepath.Join(homeDir(), ".local", "state", "signup", "signup.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.start_route", "register")
	v.SetDefault("keys", map[string][]string{})
}

func (c *Config) normalize() {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.UI.StartRoute = strings.ToLower(strings.TrimSpace(c.UI.StartRoute))
	if c.Keys == nil {
		c.Keys = map[string][]string{}
	}
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// Package config handles the configuration directory, config.yaml and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "caseshop"

	// ConfigFile is the optional YAML settings filename.
	ConfigFile = "config.yaml"

	// EnvFile is the optional dotenv filename.
	EnvFile = ".env"

	// StateDir is the subdirectory holding persisted local state.
	StateDir = "state"
)

// Storage backends.
const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

// Defaults.
const (
	DefaultAPIURL        = "http://localhost:8001"
	DefaultRedisPrefix   = "caseshop:"
	DefaultToastDuration = 4 * time.Second
	DefaultAPITimeout    = 10 * time.Second
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the base URL of the storefront API.
	APIURL string

	// Storage selects the persisted state backend ("file" or "redis").
	Storage string

	// RedisAddr and RedisPrefix configure the redis backend.
	RedisAddr   string
	RedisPrefix string

	// ToastDuration is how long a notification stays visible.
	ToastDuration time.Duration

	// APITimeout bounds each remote call.
	APITimeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	APIURL        string `yaml:"api_url"`
	Storage       string `yaml:"storage"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPrefix   string `yaml:"redis_prefix"`
	ToastDuration string `yaml:"toast_duration"`
	APITimeout    string `yaml:"api_timeout"`
}

// New creates a Config with defaults for the given directory.
// If configDir is empty, uses XDG_CONFIG_HOME/caseshop or $HOME/.config/caseshop.
// Nothing is read from disk; see Load.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:           dir,
		APIURL:        DefaultAPIURL,
		Storage:       StorageFile,
		RedisPrefix:   DefaultRedisPrefix,
		ToastDuration: DefaultToastDuration,
		APITimeout:    DefaultAPITimeout,
	}, nil
}

// Load builds a Config from defaults, config.yaml, .env files and the
// environment, in increasing order of precedence, then validates it.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.readFile(); err != nil {
		return nil, err
	}

	// godotenv.Load never overrides variables that are already set.
	for _, p := range []string{filepath.Join(cfg.Dir, EnvFile), EnvFile} {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", p, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile() error {
	data, err := os.ReadFile(c.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.Storage != "" {
		c.Storage = fc.Storage
	}
	if fc.RedisAddr != "" {
		c.RedisAddr = fc.RedisAddr
	}
	if fc.RedisPrefix != "" {
		c.RedisPrefix = fc.RedisPrefix
	}
	if fc.ToastDuration != "" {
		d, err := time.ParseDuration(fc.ToastDuration)
		if err != nil {
			return fmt.Errorf("invalid %s: toast_duration: %w", ConfigFile, err)
		}
		c.ToastDuration = d
	}
	if fc.APITimeout != "" {
		d, err := time.ParseDuration(fc.APITimeout)
		if err != nil {
			return fmt.Errorf("invalid %s: api_timeout: %w", ConfigFile, err)
		}
		c.APITimeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CASESHOP_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("CASESHOP_STORAGE"); v != "" {
		c.Storage = v
	}
	if v := os.Getenv("CASESHOP_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("CASESHOP_TOAST_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CASESHOP_TOAST_DURATION: %w", err)
		}
		c.ToastDuration = d
	}
	if v := os.Getenv("CASESHOP_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CASESHOP_API_TIMEOUT: %w", err)
		}
		c.APITimeout = d
	}
	return nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return errors.New("api url must not be empty")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url: %s", c.APIURL)
	}

	switch c.Storage {
	case StorageFile:
	case StorageRedis:
		if c.RedisAddr == "" {
			return errors.New("redis storage requires redis_addr")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage)
	}

	if c.ToastDuration <= 0 {
		return fmt.Errorf("toast duration must be positive, got %s", c.ToastDuration)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.APITimeout)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// StatePath returns the directory used by the file storage backend.
func (c *Config) StatePath() string {
	return filepath.Join(c.Dir, StateDir)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

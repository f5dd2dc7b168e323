// Package config resolves settings from flags, FULFILL_* environment
// variables, an optional .env file and a YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

// EnvPrefix is prepended to every environment key, e.g. FULFILL_STORE_PATH.
const EnvPrefix = "FULFILL"

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	Store   StoreConfig
	Redis   RedisConfig
	Journey JourneyConfig
	Log     LogConfig

	// File is the config file that was read, or "" when none was found.
	File string
}

type StoreConfig struct {
	Backend string
	Path    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type JourneyConfig struct {
	StarterSet domain.StarterSet
}

type LogConfig struct {
	Level  string
	Format string
}

// New returns a viper instance carrying every default.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.path", "~/.fulfill/fulfill.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", repository.DefaultRedisPrefix)
	v.SetDefault("journey.starter_set", string(domain.StarterStandard))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	return v
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"db":         "store.path",
	"store":      "store.backend",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// BindFlags binds the flags in flagKeys that exist in flags.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Options selects explicit files for Load.
type Options struct {
	// ConfigFile replaces the search of ~/.config/fulfill and the working
	// directory for config.yaml.
	ConfigFile string
	// EnvFile defaults to ".env". A missing file is not an error.
	EnvFile string
}

// Load reads the .env file, the config file and the environment into v and
// returns the validated result.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(expandPath(opts.ConfigFile))
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fulfill"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Store: StoreConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("store.backend"))),
			Path:    expandPath(v.GetString("store.path")),
		},
		Redis: RedisConfig{
			Addr:     os.ExpandEnv(v.GetString("redis.addr")),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Prefix:   v.GetString("redis.prefix"),
		},
		Journey: JourneyConfig{
			StarterSet: domain.StarterSet(strings.ToLower(strings.TrimSpace(v.GetString("journey.starter_set")))),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		File: v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for the sqlite backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("store.backend must be %q or %q, got %q", BackendSQLite, BackendRedis, c.Store.Backend)
	}
	if _, err := domain.StarterJourney(c.Journey.StarterSet); err != nil {
		return err
	}
	return nil
}

// expandPath expands environment variables and a leading ~.
func expandPath(p string) string {
	p = os.ExpandEnv(strings.TrimSpace(p))
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

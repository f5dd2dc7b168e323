package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// isolate points HOME and the working directory at an empty temp dir so no
// real config or .env file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	for _, k := range []string{
		"FULFILL_STORE_BACKEND", "FULFILL_STORE_PATH", "FULFILL_REDIS_ADDR",
		"FULFILL_REDIS_DB", "FULFILL_REDIS_PREFIX", "FULFILL_JOURNEY_STARTER_SET",
		"FULFILL_LOG_LEVEL", "FULFILL_LOG_FORMAT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(New(), Options{})
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, ".fulfill", "fulfill.db"), cfg.Store.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "fulfill:", cfg.Redis.Prefix)
	assert.Equal(t, domain.StarterStandard, cfg.Journey.StarterSet)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FULFILL_STORE_BACKEND", "Redis")
	t.Setenv("FULFILL_REDIS_ADDR", "cache:6380")
	t.Setenv("FULFILL_REDIS_DB", "2")
	t.Setenv("FULFILL_JOURNEY_STARTER_SET", "extended")

	cfg, err := Load(New(), Options{})
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, domain.StarterExtended, cfg.Journey.StarterSet)
}

func TestLoad_ConfigFileFromSearchPath(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "fulfill")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	yaml := "store:\n  path: ~/crm/data.db\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(New(), Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "crm", "data.db"), cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journey:\n  starter_set: extended\n"), 0o644))

	cfg, err := Load(New(), Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, domain.StarterExtended, cfg.Journey.StarterSet)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	home := isolate(t)
	_, err := Load(New(), Options{ConfigFile: filepath.Join(home, "nope.yaml")})
	require.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FULFILL_LOG_LEVEL=error\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FULFILL_LOG_LEVEL") })

	cfg, err := Load(New(), Options{EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_FlagsWin(t *testing.T) {
	home := isolate(t)
	t.Setenv("FULFILL_STORE_PATH", filepath.Join(home, "env.db"))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("store", "", "")
	flags.String("log-level", "", "")
	flags.String("log-format", "", "")
	require.NoError(t, flags.Parse([]string{"--db", filepath.Join(home, "flag.db")}))

	v := New()
	require.NoError(t, BindFlags(v, flags))
	cfg, err := Load(v, Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "flag.db"), cfg.Store.Path)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend, "unset flags fall back to defaults")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Store:   StoreConfig{Backend: BackendSQLite, Path: "x.db"},
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Journey: JourneyConfig{StarterSet: domain.StarterStandard},
		}
	}
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "mongo" }},
		{"sqlite without path", func(c *Config) { c.Store.Path = "" }},
		{"redis without addr", func(c *Config) { c.Store.Backend = BackendRedis; c.Redis.Addr = "" }},
		{"unknown starter set", func(c *Config) { c.Journey.StarterSet = "deluxe" }},
	}
	base := valid()
	require.NoError(t, base.Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

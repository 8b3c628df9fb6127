package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langdomain/pkg/config"
)

type successConfig struct {
	Addr     string        `env:"CFG_TEST_ADDR" envDefault:":8080"`
	Interval time.Duration `env:"CFG_TEST_INTERVAL" envDefault:"30s"`
	Legacy   bool          `env:"CFG_TEST_LEGACY" envDefault:"false"`
}

type defaultsConfig struct {
	Addr     string        `env:"CFG_TEST_DEFAULT_ADDR" envDefault:":8080"`
	Interval time.Duration `env:"CFG_TEST_DEFAULT_INTERVAL" envDefault:"30s"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value    string   `env:"CFG_TEST_FILE_VALUE"`
	List     []string `env:"CFG_TEST_FILE_LIST" envSeparator:","`
	Override string   `env:"CFG_TEST_OVERRIDE_ONLY"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("CFG_TEST_ADDR", ":9090")
	t.Setenv("CFG_TEST_INTERVAL", "1m")
	t.Setenv("CFG_TEST_LEGACY", "true")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, time.Minute, cfg.Interval)
	assert.True(t, cfg.Legacy)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("CFG_TEST_DEFAULT_ADDR")
	os.Unsetenv("CFG_TEST_DEFAULT_INTERVAL")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.Interval)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "Load serves the cached value")

	parsed, err := config.Parse[cachedConfig]()
	require.NoError(t, err)
	assert.Equal(t, "second", parsed.Value, "Parse reads the live environment")

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")
	config.Reset()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("CFG_TEST_FILE_VALUE")
	os.Unsetenv("CFG_TEST_FILE_LIST")
	os.Unsetenv("CFG_TEST_OVERRIDE_ONLY")
	t.Cleanup(func() {
		os.Unsetenv("CFG_TEST_FILE_VALUE")
		os.Unsetenv("CFG_TEST_FILE_LIST")
		os.Unsetenv("CFG_TEST_OVERRIDE_ONLY")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.test", "testdata/.env.override"))

	cfg, err := config.Parse[fileConfig]()
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.Value, "earlier files take precedence")
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "override", cfg.Override)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.NoError(t, config.LoadEnv())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Addr    string        `env:"ERADATE_TEST_ADDR" envDefault:":8080"`
	Strict  bool          `env:"ERADATE_TEST_STRICT"`
	Timeout time.Duration `env:"ERADATE_TEST_TIMEOUT" envDefault:"5s"`
	Tags    []string      `env:"ERADATE_TEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Table string `env:"ERADATE_TEST_REQUIRED_TABLE,required"`
}

func TestLoad(t *testing.T) {
	reset()
	t.Setenv("ERADATE_TEST_STRICT", "true")
	t.Setenv("ERADATE_TEST_TAGS", "a,b")

	var cfg testConfig
	require.NoError(t, Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)

	t.Run("cached per type", func(t *testing.T) {
		t.Setenv("ERADATE_TEST_ADDR", ":9090")

		var again testConfig
		require.NoError(t, Load(&again))
		assert.Equal(t, cfg, again)
	})
}

func TestLoad_Required(t *testing.T) {
	reset()

	var cfg requiredConfig
	assert.Error(t, Load(&cfg))
	assert.Panics(t, func() { MustLoad(&cfg) })

	t.Setenv("ERADATE_TEST_REQUIRED_TABLE", "eras.json")
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "eras.json", cfg.Table)
}

func TestLoad_NilDestination(t *testing.T) {
	var cfg *testConfig
	assert.Error(t, Load(cfg))
}

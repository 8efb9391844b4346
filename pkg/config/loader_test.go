package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xmlkit/pkg/config"
)

type loaderTestConfig struct {
	Limit        int64    `env:"TEST_LOADER_LIMIT" envDefault:"262144"`
	ContentTypes []string `env:"TEST_LOADER_TYPES" envSeparator:","`
	Required     string   `env:"TEST_LOADER_REQUIRED" envDefault:"ok"`
}

type requiredConfig struct {
	Value string `env:"TEST_LOADER_MUST_BE_SET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied when env unset", func(t *testing.T) {
		config.ResetCache()

		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, int64(262144), cfg.Limit)
		assert.Empty(t, cfg.ContentTypes)
		assert.Equal(t, "ok", cfg.Required)
	})

	t.Run("values parsed from env", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_LOADER_LIMIT", "1024")
		t.Setenv("TEST_LOADER_TYPES", "text/plain,application/soap+xml")

		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, int64(1024), cfg.Limit)
		assert.Equal(t, []string{"text/plain", "application/soap+xml"}, cfg.ContentTypes)
	})

	t.Run("cached after first load", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_LOADER_LIMIT", "2048")

		var first loaderTestConfig
		require.NoError(t, config.Load(&first))

		// Changing the environment has no effect on an already-loaded type.
		t.Setenv("TEST_LOADER_LIMIT", "4096")

		var second loaderTestConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first.Limit, second.Limit)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[loaderTestConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.ResetCache()

		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

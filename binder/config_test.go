package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xmlkit/binder"
	"github.com/dmitrymomot/xmlkit/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := binder.NewConfig()
		assert.Equal(t, binder.DefaultBodyLimit, cfg.Limit())
	})

	t.Run("with limit", func(t *testing.T) {
		cfg := binder.NewConfig(binder.WithLimit(4096))
		assert.Equal(t, int64(4096), cfg.Limit())
	})

	t.Run("zero limit panics", func(t *testing.T) {
		assert.Panics(t, func() {
			binder.WithLimit(0)
		})
	})

	t.Run("negative limit panics", func(t *testing.T) {
		assert.Panics(t, func() {
			binder.WithLimit(-1)
		})
	})

	t.Run("nil predicate panics", func(t *testing.T) {
		assert.Panics(t, func() {
			binder.WithContentType(nil)
		})
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		config.ResetCache()

		cfg, err := binder.NewConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, binder.DefaultBodyLimit, cfg.Limit())
	})

	t.Run("limit from environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("XMLKIT_BODY_LIMIT", "1024")

		cfg, err := binder.NewConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, int64(1024), cfg.Limit())
	})

	t.Run("invalid limit", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("XMLKIT_BODY_LIMIT", "-5")

		_, err := binder.NewConfigFromEnv()
		require.Error(t, err)
	})

	t.Run("extra content types from environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("XMLKIT_CONTENT_TYPES", "text/plain, application/soap+xml")

		cfg, err := binder.NewConfigFromEnv()
		require.NoError(t, err)

		req := newXMLRequest(t, "text/plain", myObjectXML)
		req = req.WithContext(binder.WithConfig(req.Context(), cfg))

		result, err := binder.XML[myObject](req)
		require.NoError(t, err)
		assert.Equal(t, "test", result.Name)

		req = newXMLRequest(t, "text/html", myObjectXML)
		req = req.WithContext(binder.WithConfig(req.Context(), cfg))

		_, err = binder.XML[myObject](req)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}

func TestNewShared(t *testing.T) {
	t.Run("wraps config", func(t *testing.T) {
		cfg := binder.NewConfig(binder.WithLimit(10))
		s := binder.NewShared(cfg)
		assert.Same(t, cfg, s.Config())
	})

	t.Run("nil wraps default", func(t *testing.T) {
		s := binder.NewShared(nil)
		require.NotNil(t, s.Config())
		assert.Equal(t, binder.DefaultBodyLimit, s.Config().Limit())
	})
}

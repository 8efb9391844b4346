package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/xmlkit/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("request id", func(t *testing.T) {
		attr := logger.RequestID("abc")
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "abc", attr.Value.String())
	})

	t.Run("empty request id yields empty attr", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	})

	t.Run("component and event", func(t *testing.T) {
		assert.Equal(t, "component", logger.Component("binder").Key)
		assert.Equal(t, "binder", logger.Component("binder").Value.String())
		assert.Equal(t, "event", logger.Event("decode_failed").Key)
	})

	t.Run("group", func(t *testing.T) {
		attr := logger.Group("http", slog.String("method", "POST"))
		assert.Equal(t, "http", attr.Key)
		assert.Len(t, attr.Value.Group(), 1)
	})
}

package sl_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthmon/auth-backend/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	err := errors.New("connection refused")
	attr := sl.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("connection refused"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.Panics(t, func() {
		_ = sl.Err(nil)
	})
}

func TestOp(t *testing.T) {
	attr := sl.Op("storage.RegisterUser")

	assert.Equal(t, "op", attr.Key)
	assert.Equal(t, "storage.RegisterUser", attr.Value.String())
}

func TestDiscard(t *testing.T) {
	log := sl.Discard().With(sl.Op("test")).WithGroup("g")

	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() {
		log.Error("nothing is written", sl.Err(errors.New("boom")))
	})
}

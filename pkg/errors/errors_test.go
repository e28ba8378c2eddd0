package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("marks", "PPEMR", "duplicate mark")
	assert.Equal(t, "validation failed for marks: duplicate mark", err.Error())
	assert.True(t, IsValidationError(err))
	assert.True(t, stderrors.Is(err, ErrInvalidInput))
}

func TestAttrError(t *testing.T) {
	underlying := stderrors.New("operation not permitted")
	err := NewAttrError("set", "/usr/bin/app", "user.pax.flags", underlying)
	assert.Equal(t, "failed to set user.pax.flags on /usr/bin/app: operation not permitted", err.Error())
	assert.Equal(t, underlying, stderrors.Unwrap(err))
}

func TestIOError(t *testing.T) {
	underlying := stderrors.New("no such file")
	err := NewIOError("stat", "/missing", underlying)
	assert.Contains(t, err.Error(), "stat")
	assert.Contains(t, err.Error(), "/missing")
	assert.Equal(t, underlying, stderrors.Unwrap(err))
}

func TestWrapHelpersPassNilThrough(t *testing.T) {
	assert.NoError(t, WrapIO("read", "/tmp/x", nil))
	assert.NoError(t, WrapAttr("get", "/tmp/x", "user.pax.flags", nil))
	assert.NoError(t, WrapValidation("marks", nil))
}

func TestWrapAttrPreservesSentinels(t *testing.T) {
	err := WrapAttr("set", "/mnt/fat32/app", "user.pax.flags", ErrUnsupported)
	assert.True(t, IsUnsupported(err))

	err = WrapAttr("set", "/usr/bin/app", "user.pax.flags", ErrPermission)
	assert.True(t, IsPermission(err))
}

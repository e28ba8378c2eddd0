package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("from context")
	assert.True(t, tl.Contains("from context"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // nil context is part of the contract
}

func TestWithTarget(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithTarget(ctx, "/usr/bin/app")

	Ctx(ctx).Info().Msg("marked")
	assert.True(t, tl.Contains(`"target":"/usr/bin/app"`))
}

func TestWithField(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithField(ctx, "valid", false)

	Ctx(ctx).Warn().Msg("malformed marks")
	assert.True(t, tl.Contains(`"valid":false`))
}

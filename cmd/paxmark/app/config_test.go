package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edera-dev/paxmark/pkg/constants"
)

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "table",
		Attr:     constants.AttrName,
		LogLevel: "info",
	}

	config.UpdateFromFlags(true, false, true, "json", "debug", "user.custom")

	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "user.custom", config.Attr)
}

func TestUpdateFromFlagsKeepsUnsetValues(t *testing.T) {
	config := &Config{
		Format:   "yaml",
		Attr:     constants.AttrName,
		LogLevel: "warn",
	}

	// Empty strings mean the flag was not provided: existing values stay.
	config.UpdateFromFlags(false, false, false, "", "", "")

	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, constants.AttrName, config.Attr)
}

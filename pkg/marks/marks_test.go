package marks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edera-dev/paxmark/pkg/marks"
)

func TestTableOrder(t *testing.T) {
	// The table order fixes the canonical output layout.
	var letters string
	for _, info := range marks.Table {
		letters += info.Mark.Letter()
	}
	assert.Equal(t, "PEMRS", letters)
}

func TestAllEnabled(t *testing.T) {
	assert.Equal(t, "PEMRS", marks.AllEnabled())
}

func TestMarkName(t *testing.T) {
	assert.Equal(t, "PAGEEXEC", marks.PageExec.Name())
	assert.Equal(t, "EMUTRAMP", marks.EmuTramp.Name())
	assert.Equal(t, "MPROTECT", marks.MProtect.Name())
	assert.Equal(t, "RANDMMAP", marks.RandMmap.Name())
	assert.Equal(t, "SEGMEXEC", marks.SegmExec.Name())
	assert.Equal(t, "", marks.Mark('X').Name())
}

func TestMarkKnown(t *testing.T) {
	for _, info := range marks.Table {
		assert.True(t, info.Mark.Known())
	}
	assert.False(t, marks.Mark('Q').Known())
	// Identity is the uppercase letter; lowercase is a state encoding,
	// not a distinct mark.
	assert.False(t, marks.Mark('p').Known())
}

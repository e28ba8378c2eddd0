package marks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edera-dev/paxmark/pkg/marks"
)

func TestBuildDirectives(t *testing.T) {
	tests := []struct {
		name string
		req  marks.Request
		want marks.Directive
	}{
		{"neither flag yields keep", marks.Request{}, marks.Keep},
		{"enable flag yields enable", marks.Request{Enable: true}, marks.Enable},
		{"disable flag yields disable", marks.Request{Disable: true}, marks.Disable},
		{"enable wins over disable", marks.Request{Enable: true, Disable: true}, marks.Enable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, info := range marks.Table {
				set := marks.BuildDirectives(map[marks.Mark]marks.Request{info.Mark: tt.req})
				assert.Equal(t, tt.want, set[info.Mark], "mark %s", info.Name)
			}
		})
	}
}

func TestBuildDirectivesCoversEveryMark(t *testing.T) {
	set := marks.BuildDirectives(nil)
	assert.Len(t, set, len(marks.Table))
	for _, info := range marks.Table {
		assert.Equal(t, marks.Keep, set[info.Mark])
	}
}

func TestKeepAll(t *testing.T) {
	set := marks.KeepAll()
	assert.Len(t, set, len(marks.Table))
	for mark, directive := range set {
		assert.Equal(t, marks.Keep, directive, "mark %s", mark.Letter())
	}
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "enable", marks.Enable.String())
	assert.Equal(t, "disable", marks.Disable.String())
	assert.Equal(t, "keep", marks.Keep.String())
}

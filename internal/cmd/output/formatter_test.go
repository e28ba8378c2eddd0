package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	err := f.Format(&buf, map[string]any{"marks": "PEMRS", "valid": true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"marks": "PEMRS"`)
	assert.Contains(t, buf.String(), `"valid": true`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	err := f.Format(&buf, map[string]string{"marks": "PEMRS"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "marks: PEMRS")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	err := f.Format(&buf, Data{
		Headers: []string{"MARK", "LETTER", "STATE"},
		Rows: [][]string{
			{"PAGEEXEC", "P", "enabled"},
			{"MPROTECT", "m", "disabled"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PAGEEXEC")
	assert.Contains(t, out, "disabled")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	err := f.Format(&buf, map[string]string{"marks": "PEMRS"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, "format %q", valid)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

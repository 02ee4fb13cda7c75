package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	out, err := exporter.Render(Dataset{
		Headers: []string{"Survey", "Status"},
		Rows: []map[string]string{
			{"Survey": "Student Feedback", "Status": "published"},
		},
	}, "Riverside High School", "#1e40af")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporterInvalidBrandColorFallsBack(t *testing.T) {
	exporter := NewPDFExporter()

	out, err := exporter.Render(Dataset{
		Headers: []string{"Survey"},
		Rows:    []map[string]string{{"Survey": "One"}},
	}, "Untitled", "not-a-color")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	exporter := NewPDFExporter()

	_, err := exporter.Render(Dataset{}, "title", "")
	require.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#1e40af")
	assert.Equal(t, 0x1e, r)
	assert.Equal(t, 0x40, g)
	assert.Equal(t, 0xaf, b)

	r, g, b = parseHexColor("")
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	r, g, b = parseHexColor("#zzzzzz")
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{
			name:      "precision 2",
			precision: 2,
			value:     3.14159,
			expected:  "3.14",
		},
		{
			name:      "precision 0",
			precision: 0,
			value:     3.14159,
			expected:  "3",
		},
		{
			name:      "precision 1",
			precision: 1,
			value:     68.55,
			expected:  "68.5",
		},
		{
			name:      "negative value",
			precision: 2,
			value:     -42.567,
			expected:  "-42.57",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]any{"name": "test", "value": 42})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"test\",\n  \"value\": 42\n}\n", buf.String())
}

func TestWriteJSONError(t *testing.T) {
	// Test with a value that can't be marshaled to JSON
	invalidData := make(chan int)
	var buf bytes.Buffer
	err := writeJSON(&buf, invalidData)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"name", "score"}, func(w *csv.Writer) error {
		return w.Write([]string{"Raleigh", "68.5"})
	})
	require.NoError(t, err)
	assert.Equal(t, "name,score\nRaleigh,68.5\n", buf.String())
}

func TestWriteCSVWithHeaderError(t *testing.T) {
	// Test CSV writer error propagation
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error {
		return assert.AnError
	})
	require.Error(t, err)
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFileStdout(t *testing.T) {
	// Empty string means stdout
	called := false
	err := writeWithFile("", func(w io.Writer) error {
		called = true
		_, err := w.Write([]byte("test"))
		return err
	}, "Test message")

	require.NoError(t, err)
	assert.True(t, called, "Writer function should have been called")
}

func TestWriteWithFileActualFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.txt")

	testContent := "test content"
	err := writeWithFile(tmpFile, func(w io.Writer) error {
		_, err := w.Write([]byte(testContent))
		return err
	}, "Test message")

	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, string(content))
}

func TestWriteWithFileError(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.txt")

	err := writeWithFile(tmpFile, func(io.Writer) error {
		return assert.AnError
	}, "Test message")

	require.Error(t, err)
	assert.Equal(t, assert.AnError, err)
}

func TestHeaderEmojiToggle(t *testing.T) {
	cfg := &contract.Config{UseEmojis: true}
	assert.Equal(t, "🏙️ City Rankings", header(cfg, "🏙️", "City Rankings"))

	cfg.UseEmojis = false
	assert.Equal(t, "City Rankings", header(cfg, "🏙️", "City Rankings"))
}

func TestLabelForColorToggle(t *testing.T) {
	plain := &contract.Config{UseColors: false}
	assert.Equal(t, contract.GetPlainLabel(85), labelFor(plain, 85))

	colored := &contract.Config{UseColors: true}
	assert.Contains(t, labelFor(colored, 85), contract.GetPlainLabel(85))
}

func TestSigned(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	assert.Equal(t, "+4.5", signed(fmtFloat, 4.5))
	assert.Equal(t, "-2.0", signed(fmtFloat, -2.0))
	assert.Equal(t, "+0.0", signed(fmtFloat, 0))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	// Width override narrow enough to hit the floor
	narrow := &contract.Config{Width: 40}
	assert.Equal(t, 12, getMaxTableNameWidth(narrow))

	// Width override wide enough to hit the cap
	wide := &contract.Config{Width: 500}
	assert.Equal(t, 40, getMaxTableNameWidth(wide))

	// Width in between scales with the terminal
	medium := &contract.Config{Width: 100}
	assert.Equal(t, 25, getMaxTableNameWidth(medium))
}

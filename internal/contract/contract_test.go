package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel tests the fit label boundaries.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{name: "excellent at boundary", score: 80, expected: ExcellentValue},
		{name: "excellent high", score: 97.5, expected: ExcellentValue},
		{name: "good at boundary", score: 60, expected: GoodValue},
		{name: "good just under excellent", score: 79.9, expected: GoodValue},
		{name: "fair at boundary", score: 40, expected: FairValue},
		{name: "poor just under fair", score: 39.9, expected: PoorValue},
		{name: "poor at zero", score: 0, expected: PoorValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.score))
		})
	}
}

// TestGetColorLabel verifies the colored label carries the same text.
func TestGetColorLabel(t *testing.T) {
	for _, score := range []float64{90, 70, 50, 10} {
		assert.Contains(t, GetColorLabel(score), GetPlainLabel(score))
	}
}

// TestTruncateName tests name truncation behavior.
func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{name: "short name untouched", input: "Boise", maxWidth: 20, expected: "Boise"},
		{name: "long name truncated", input: "Winston-Salem Metropolitan Area", maxWidth: 10, expected: "Winston..."},
		{name: "tiny width untouched", input: "Raleigh", maxWidth: 3, expected: "Raleigh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

// TestParseBoolString tests accepted and rejected boolean strings.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// TestProcessAndValidate covers the main validation paths.
func TestProcessAndValidate(t *testing.T) {
	valid := func() *ConfigRawInput {
		return &ConfigRawInput{
			Limit:        25,
			Precision:    1,
			Output:       "text",
			StoreBackend: "none",
			Emoji:        "no",
			Color:        "yes",
		}
	}

	t.Run("valid input", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, ProcessAndValidate(cfg, valid()))
		assert.Equal(t, 25, cfg.ResultLimit)
		assert.True(t, cfg.UseColors)
		assert.False(t, cfg.UseEmojis)
	})

	t.Run("limit out of range", func(t *testing.T) {
		input := valid()
		input.Limit = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.Limit = MaxResultLimit + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("bad output mode", func(t *testing.T) {
		input := valid()
		input.Output = "xml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("bad category", func(t *testing.T) {
		input := valid()
		input.Category = "weather"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("category normalizes case", func(t *testing.T) {
		input := valid()
		input.Category = "Climate"
		cfg := &Config{}
		assert.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, "climate", string(cfg.Category))
	})

	t.Run("mysql requires connection string", func(t *testing.T) {
		input := valid()
		input.StoreBackend = "mysql"
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.StoreDBConnect = "user:pass@tcp(localhost:3306)/cityscope"
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("postgres requires host and dbname", func(t *testing.T) {
		input := valid()
		input.StoreBackend = "postgresql"
		input.StoreDBConnect = "host=localhost"
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.StoreDBConnect = "host=localhost dbname=cityscope"
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})
}

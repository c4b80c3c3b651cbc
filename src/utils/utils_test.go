package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_SupportedLayouts(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"01/02/2024", "2024-01-02"},
		{"1/2/2024", "2024-01-02"},
		{"2024-01-02", "2024-01-02"},
		{" 01/02/2024 ", "2024-01-02"},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got.Format(DisplayDateFormat), "input %q", tt.input)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "notadate", "13/45/2024", "Opening Balance:"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5.00", "5.00"},
		{"-12.50", "-12.50"},
		{"$1,234.56", "1234.56"},
		{"(41.20)", "-41.20"},
		{" 3.00 ", "3.00"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got.StringFixed(2), "input %q", tt.input)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12.3.4"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestGenerateETag_Deterministic(t *testing.T) {
	type payload struct {
		A string
		B int
	}
	etag1, err := GenerateETag(payload{"x", 1})
	require.NoError(t, err)
	etag2, err := GenerateETag(payload{"x", 1})
	require.NoError(t, err)
	etag3, err := GenerateETag(payload{"y", 1})
	require.NoError(t, err)

	assert.Equal(t, etag1, etag2)
	assert.NotEqual(t, etag1, etag3)
	assert.Len(t, etag1, 64)
}

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClientContentType(t *testing.T) {
	for _, ct := range []string{"text/csv", "application/csv", "text/plain", "text/csv; charset=utf-8"} {
		assert.NoError(t, ValidateClientContentType(ct), "contentType %q", ct)
	}
	for _, ct := range []string{"application/pdf", "image/png", ""} {
		assert.Error(t, ValidateClientContentType(ct), "contentType %q", ct)
	}
}

func TestValidateFileContentByMagicBytes_CSV(t *testing.T) {
	content := "Trans. Date,Description,Amount\n01/02/2024,Coffee,5.00\n"
	detected, err := ValidateFileContentByMagicBytes(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", detected)
}

func TestValidateFileContentByMagicBytes_RejectsBinary(t *testing.T) {
	// PDF magic bytes.
	_, err := ValidateFileContentByMagicBytes(strings.NewReader("%PDF-1.4\n\x00\x01\x02"))
	assert.Error(t, err)
}

func TestValidateFileContentByMagicBytes_ResetsReader(t *testing.T) {
	content := "01/02/2024,Coffee,5.00\n"
	r := strings.NewReader(content)
	_, err := ValidateFileContentByMagicBytes(r)
	require.NoError(t, err)

	rest := make([]byte, len(content))
	n, _ := r.Read(rest)
	assert.Equal(t, content, string(rest[:n]))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Discover-Statement.csv", "Discover-Statement.csv"},
		{"Apple Card Transactions.csv", "Apple_Card_Transactions.csv"},
		{"../../etc/passwd", "passwd"},
		{"weird<>|name.csv", "weird___name.csv"},
		{"", "upload"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.input), "input %q", tt.input)
	}
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "hello\tworld\n", StripUnprintable("hello\t\x00world\x07\n"))
}

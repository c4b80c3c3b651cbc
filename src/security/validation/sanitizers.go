package validation

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path components are stripped and anything outside letters, digits, dot,
// dash and underscore is replaced with an underscore.
func SanitizeFilename(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, base)
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}

// StripUnprintable removes non-printable characters, allowing common
// whitespace like space, tab, newline, and carriage return.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}

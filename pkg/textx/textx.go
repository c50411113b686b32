// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
	"unicode"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SanitizeName prepares a single-line display name: control characters are
// dropped and any whitespace run becomes one space.
func SanitizeName(s string) string {
	fields := strings.FieldsFunc(SanitizeText(s), unicode.IsSpace)
	return strings.Join(fields, " ")
}

package sheet

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeKey turns a header label like "Job Title" into "jobTitle".
func NormalizeKey(label string) string {
	words := strings.Fields(strings.ToLower(label))
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

// cleanCell strips double quotes and then surrounding whitespace from one
// split token, so whitespace inside the quotes is trimmed too.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}

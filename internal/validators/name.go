package validators

import (
	"regexp"
	"strings"
)

var (
	nameRe       = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// IsName reports whether s contains only letters and whitespace.
func IsName(s string) bool {
	return nameRe.MatchString(s)
}

// SanitizeName trims and collapses internal whitespace runs to single
// spaces: "  John   Doe  " becomes "John Doe".
func SanitizeName(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

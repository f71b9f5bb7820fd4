package validators

import (
	"regexp"
	"strings"
)

// Structural check only: local@domain with at least one dot in the
// domain. Deliverability is the mail provider's problem.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmail(email string) bool {
	return emailRe.MatchString(email)
}

// SanitizeEmail normalizes an address for storage: trimmed, lowercased.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

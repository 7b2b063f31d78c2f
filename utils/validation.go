package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Local numbers: 9-11 digits, optional leading +84 or 0.
	phoneRe = regexp.MustCompile(`^(\+84|0)?\d{9,11}$`)
)

// IsValidEmail reports whether the given string looks like an email address.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsValidPhone reports whether the given string looks like a phone number.
// Spaces, dots and dashes are ignored.
func IsValidPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", ".", "", "-", "").Replace(phone)
	return phoneRe.MatchString(cleaned)
}

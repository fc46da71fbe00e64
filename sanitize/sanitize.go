// Package sanitize defangs raw user input before it reaches the moderation pipeline.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DefaultMaxLength = 255
	// MaxEmailLength is the RFC 5321 limit for a forward path.
	MaxEmailLength = 254
)

var (
	angleBrackets  = regexp.MustCompile(`[<>]`)
	jsProtocol     = regexp.MustCompile(`(?i)javascript:`)
	eventHandler   = regexp.MustCompile(`(?i)on\w+\s*=`)
	emailForbidden = regexp.MustCompile(`[<>"']`)
	emailShape     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Sanitize trims the input, caps it to maxLength characters and removes
// the characters and prefixes commonly used for HTML/JS injection.
// Stripping is character-level: "<b>" becomes "b", not "".
func Sanitize(input string, maxLength int) string {
	out := strings.TrimSpace(input)
	if out == "" {
		return ""
	}
	out = truncate(out, maxLength)
	out = angleBrackets.ReplaceAllString(out, "")
	out = jsProtocol.ReplaceAllString(out, "")
	return eventHandler.ReplaceAllString(out, "")
}

// SanitizeDefault is Sanitize with DefaultMaxLength.
func SanitizeDefault(input string) string {
	return Sanitize(input, DefaultMaxLength)
}

// SanitizeEmail normalizes an email address typed by a user.
func SanitizeEmail(input string) string {
	out := strings.ToLower(strings.TrimSpace(input))
	out = truncate(out, MaxEmailLength)
	return emailForbidden.ReplaceAllString(out, "")
}

// IsValidEmail is a permissive local@domain.tld check meant for presentation,
// not for security decisions. Length is counted in characters like SanitizeEmail.
func IsValidEmail(input string) bool {
	return utf8.RuneCountInString(input) <= MaxEmailLength && emailShape.MatchString(input)
}

// truncate cuts s after max runes. A non-positive max yields an empty string.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

package utils

import (
	"regexp"
	"strings"
)

var (
	phoneFormatting = regexp.MustCompile(`[\s\-\(\)\+]`)
	indianMobile    = regexp.MustCompile(`^[6-9]\d{9}$`)
	indianMobile91  = regexp.MustCompile(`^91[6-9]\d{9}$`)
)

// ValidatePhoneNumber reports whether phone is a valid Indian mobile number,
// with or without a +91 prefix.
func ValidatePhoneNumber(phone string) bool {
	cleaned := phoneFormatting.ReplaceAllString(phone, "")
	return indianMobile.MatchString(cleaned) || indianMobile91.MatchString(cleaned)
}

// NormalizePhoneNumber strips formatting and any 91 country prefix, returning
// the bare 10-digit number.
func NormalizePhoneNumber(phone string) string {
	cleaned := phoneFormatting.ReplaceAllString(phone, "")
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "91") {
		return cleaned[2:]
	}
	return cleaned
}

package validation

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	pinPattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsPhone accepts exactly ten digits, the Indian mobile-number format the
// storefront collects.
func IsPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

func IsPinCode(s string) bool {
	return pinPattern.MatchString(strings.TrimSpace(s))
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

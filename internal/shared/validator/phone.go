package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches Korean mobile numbers after normalization
	// 01X (X in 0,1,6,7,8,9) + 3~4 digits + 4 digits
	phoneRegex    = regexp.MustCompile(`^01[016789][0-9]{3,4}[0-9]{4}$`)
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)
)

// NormalizePhone strips every non-digit character
// Example: 010-1234-5678 -> 01012345678
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// IsValidPhone reports whether the input is a Korean mobile number.
// Separators are stripped before matching, so 010-1234-5678 and
// 01012345678 are both accepted.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// ValidatePhone validates a Korean mobile phone number
// This is a common validator used across multiple domains
func ValidatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// memberIDRegex allows alphabet and digits only (case-insensitive)
var memberIDRegex = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// IsValidMemberID reports whether the id consists of letters and digits only.
// Length rules are checked separately.
func IsValidMemberID(memberID string) bool {
	return memberIDRegex.MatchString(memberID)
}

// ValidateMemberID validates the member id character set for binding tags
func ValidateMemberID(fl validator.FieldLevel) bool {
	return IsValidMemberID(fl.Field().String())
}

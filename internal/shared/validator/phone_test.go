package validator_test

import (
	"testing"

	"github.com/anstar94/member-api-server/internal/shared/validator"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "01012345678", validator.NormalizePhone("010-1234-5678"))
	assert.Equal(t, "01012345678", validator.NormalizePhone("010 1234 5678"))
	assert.Equal(t, "01012345678", validator.NormalizePhone("01012345678"))
	assert.Equal(t, "", validator.NormalizePhone("---"))
}

func TestIsValidPhone(t *testing.T) {
	testCases := []struct {
		phone string
		valid bool
	}{
		{"010-1234-5678", true},
		{"01012345678", true},
		{"011-123-4567", true},
		{"016-1234-5678", true},
		{"02-123-4567", false},   // 지역번호 (서울)
		{"012-1234-5678", false}, // 01 뒤 허용되지 않는 숫자
		{"010-12-34", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.valid, validator.IsValidPhone(tc.phone), "phone=%s", tc.phone)
	}
}

func TestIsValidMemberID(t *testing.T) {
	testCases := []struct {
		memberID string
		valid    bool
	}{
		{"tester01", true},
		{"TESTER01", true},
		{"123456", true},
		{"tester-01", false},
		{"tester 01", false},
		{"테스터아이디", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.valid, validator.IsValidMemberID(tc.memberID), "memberID=%s", tc.memberID)
	}
}

package logger_test

import (
	"testing"

	"github.com/anstar94/member-api-server/internal/shared/logger"
	"github.com/stretchr/testify/assert"
)

func TestMaskMemberID(t *testing.T) {
	assert.Equal(t, "tes*****", logger.MaskMemberID("tester01"))
	assert.Equal(t, "a*", logger.MaskMemberID("ab"))
	assert.Equal(t, "", logger.MaskMemberID(""))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "010****5678", logger.MaskPhone("01012345678"))
	assert.Equal(t, "016***4567", logger.MaskPhone("0161234567"))
	assert.Equal(t, "***", logger.MaskPhone("1234"))
	assert.Equal(t, "", logger.MaskPhone(""))
}

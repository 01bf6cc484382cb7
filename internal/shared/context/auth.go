package context

import (
	"net/http"

	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
	"github.com/anstar94/member-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing the authenticated member
const (
	MemberNoKey = "member_no"
)

func GetMemberNo(c *gin.Context) (uint32, bool) {
	memberNo, exists := c.Get(MemberNoKey)
	if !exists {
		return 0, false
	}

	no, ok := memberNo.(uint32)
	if !ok || no == 0 {
		return 0, false
	}

	return no, true
}

// RequireMemberNo retrieves the logged-in member number from the Gin context.
// If it is not found, automatically sends an authentication error response.
// Returns the member number and true if found, 0 and false otherwise (error already sent).
func RequireMemberNo(c *gin.Context) (uint32, bool) {
	memberNo, ok := GetMemberNo(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 번호가 존재하지 않습니다.")
		return 0, false
	}
	return memberNo, true
}

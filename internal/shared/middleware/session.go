package middleware

import (
	"log/slog"
	"net/http"

	sharedContext "github.com/anstar94/member-api-server/internal/shared/context"
	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
	sharedSession "github.com/anstar94/member-api-server/internal/shared/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session error constants (errInfo)
const (
	notLoggedIn = "NOT_LOGGED_IN"
)

// Domain errors
var (
	ErrNotLoggedIn = sharedError.NewDomainError(notLoggedIn)
)

// Register session error responses
func init() {
	sharedError.RegisterDomainErrorResponse(notLoggedIn, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "로그인을 해주세요.",
	})
}

// RequireLogin resolves the session cookie and puts the member number into
// the request context. Requests without a logged-in session are rejected.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 요청 정보 (로깅용)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path

		sess := sessions.Default(c)
		memberNo := sharedSession.MemberNo(sess)
		if memberNo == 0 {
			slog.Warn("세션 인증 실패",
				"step", "resolve_session",
				"client_ip", clientIP,
				"method", method,
				"path", path,
			)
			handleSessionError(c)
			return
		}

		// 인증 성공 - Context에 회원 번호 저장
		c.Set(sharedContext.MemberNoKey, memberNo)
		c.Next()
	}
}

// handleSessionError handles session errors using the standardized error response format
func handleSessionError(c *gin.Context) {
	if resp, ok := sharedError.ResolveDomainError(ErrNotLoggedIn); ok {
		c.JSON(resp.Status, resp)
	} else {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "인증에 실패했습니다.",
		})
	}
	c.Abort()
}

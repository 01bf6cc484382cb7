package auth

import (
	"net/http"

	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
)

const (
	unknownMemberID  = "UNKNOWN_MEMBER_ID" // errInfo
	passwordMismatch = "WRONG_PASSWORD"    // errInfo
	sessionSave      = "SESSION_SAVE"      // errInfo
)

// 내부적으로는 아이디 없음 / 비밀번호 불일치를 구분하지만 (로그, 테스트용),
// 응답 메시지는 하나로 합쳐 계정 존재 여부를 노출하지 않는다.
var (
	ErrUnknownMemberID  = sharedError.NewDomainError(unknownMemberID)
	ErrPasswordMismatch = sharedError.NewDomainError(passwordMismatch)
	ErrSessionSave      = sharedError.NewDomainError(sessionSave)
)

func init() {
	incorrectCredentials := sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-003",
		Message: "아이디 또는 비밀번호가 일치하지 않습니다.",
	}

	sharedError.RegisterDomainErrorResponse(unknownMemberID, incorrectCredentials)
	sharedError.RegisterDomainErrorResponse(passwordMismatch, incorrectCredentials)

	sharedError.RegisterDomainErrorResponse(sessionSave, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "AUTH-500",
		Message: "세션 저장에 실패했습니다.",
	})
}

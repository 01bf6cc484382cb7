package member

import (
	"net/http"

	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
	"github.com/anstar94/member-api-server/internal/shared/validator"
)

const (
	memberNotFound      = "MEMBER_NOT_FOUND"      // errInfo
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS" // errInfo
	memberIDRequired    = "MEMBER_ID_REQUIRED"    // errInfo
	passwordRequired    = "PASSWORD_REQUIRED"     // errInfo
	passwordConfirmReq  = "PASSWORD_CONFIRM_REQ"  // errInfo
	nameRequired        = "NAME_REQUIRED"         // errInfo
	memberIDTooShort    = "MEMBER_ID_TOO_SHORT"   // errInfo
	memberIDBadFormat   = "MEMBER_ID_BAD_FORMAT"  // errInfo
	passwordTooShort    = "PASSWORD_TOO_SHORT"    // errInfo
	passwordTooSimple   = "PASSWORD_TOO_SIMPLE"   // errInfo
	passwordMismatch    = "PASSWORD_MISMATCH"     // errInfo
	cellPhoneBadFormat  = "CELL_PHONE_BAD_FORMAT" // errInfo
	registrationFailed  = "REGISTRATION_FAILED"   // errInfo
)

var (
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)

	ErrMemberIDRequired        = sharedError.NewDomainError(memberIDRequired)
	ErrPasswordRequired        = sharedError.NewDomainError(passwordRequired)
	ErrPasswordConfirmRequired = sharedError.NewDomainError(passwordConfirmReq)
	ErrNameRequired            = sharedError.NewDomainError(nameRequired)
	ErrMemberIDTooShort        = sharedError.NewDomainError(memberIDTooShort)
	ErrMemberIDBadFormat       = sharedError.NewDomainError(memberIDBadFormat)
	ErrPasswordTooShort        = sharedError.NewDomainError(passwordTooShort)
	ErrPasswordTooSimple       = sharedError.NewDomainError(passwordTooSimple)
	ErrPasswordMismatch        = sharedError.NewDomainError(passwordMismatch)
	ErrCellPhoneBadFormat      = sharedError.NewDomainError(cellPhoneBadFormat)

	ErrRegistrationFailed = sharedError.NewDomainError(registrationFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입된 회원입니다.",
	})

	// 회원가입 유효성 검사 실패 응답 (규칙당 하나, 원문 메시지 유지)
	validations := map[string]sharedError.ErrorResponse{
		memberIDRequired:   {Status: http.StatusBadRequest, Code: "MEMBER-101", Message: "아이디를 입력하세요!"},
		passwordRequired:   {Status: http.StatusBadRequest, Code: "MEMBER-102", Message: "비밀번호를 입력하세요!"},
		passwordConfirmReq: {Status: http.StatusBadRequest, Code: "MEMBER-103", Message: "비밀번호를 확인하세요!"},
		nameRequired:       {Status: http.StatusBadRequest, Code: "MEMBER-104", Message: "회원명을 입력하세요!"},
		memberIDTooShort:   {Status: http.StatusBadRequest, Code: "MEMBER-105", Message: "아이디는 6자리 이상 입력하세요."},
		memberIDBadFormat:  {Status: http.StatusBadRequest, Code: "MEMBER-106", Message: "아이디는 알파벳과 숫자로만 입력해주세요"},
		passwordTooShort:   {Status: http.StatusBadRequest, Code: "MEMBER-107", Message: "비밀번호는 8자리 이상 입력하세요."},
		passwordTooSimple:  {Status: http.StatusBadRequest, Code: "MEMBER-108", Message: "비밀번호는 알파벳, 숫자, 특수문자로 구성해주세요."},
		passwordMismatch:   {Status: http.StatusBadRequest, Code: "MEMBER-109", Message: "비밀번호가 일치하지 않습니다."},
		cellPhoneBadFormat: {Status: http.StatusBadRequest, Code: "MEMBER-110", Message: "휴대전화번호 형식이 잘못되었습니다."},
	}
	for errInfo, resp := range validations {
		sharedError.RegisterDomainErrorResponse(errInfo, resp)
	}

	// RegisterRequest의 binding 태그 실패도 동일한 응답으로 내려간다
	validator.RegisterFieldErrorResponse("MemberID", "min", validations[memberIDTooShort])
	validator.RegisterFieldErrorResponse("MemberID", "memberid", validations[memberIDBadFormat])
	validator.RegisterFieldErrorResponse("CellPhone", "phone", validations[cellPhoneBadFormat])

	sharedError.RegisterDomainErrorResponse(registrationFailed, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-500",
		Message: "회원가입 실패하였습니다!",
	})
}

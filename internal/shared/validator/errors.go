package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// fieldErrorResponses maps "Field.tag" binding failures to domain error
// responses, so the binding guard answers with the same status/code/message
// as the service-level rule it mirrors. Domains register their mappings in init.
var fieldErrorResponses = map[string]sharedError.ErrorResponse{}

// RegisterFieldErrorResponse binds a struct field + validation tag pair to a
// domain error response.
func RegisterFieldErrorResponse(field, tag string, resp sharedError.ErrorResponse) {
	fieldErrorResponses[field+"."+tag] = resp
}

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// 첫 번째 validation error만 반환 (사용자 친화적)
	fieldErr := validationErrors[0]

	if resp, ok := fieldErrorResponses[fieldErr.Field()+"."+fieldErr.Tag()]; ok {
		return &resp, true
	}

	resp := sharedError.ValidationFailed
	resp.Message = getErrorMessage(fieldErr)
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return requiredMessage(fe.Field())
	case "min":
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
	case "memberid":
		return "아이디는 알파벳과 숫자로만 입력해주세요"
	case "phone":
		return "휴대전화번호 형식이 잘못되었습니다."
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}

// requiredMessage keeps the original per-field prompts
func requiredMessage(field string) string {
	switch field {
	case "MemberID":
		return "아이디를 입력하세요!"
	case "Password":
		return "비밀번호를 입력하세요!"
	case "PasswordConfirm":
		return "비밀번호를 확인하세요!"
	case "Name":
		return "회원명을 입력하세요!"
	default:
		return "필수 항목을 입력해 주세요."
	}
}

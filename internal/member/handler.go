package member

import (
	"net/http"
	"strconv"

	sharedContext "github.com/anstar94/member-api-server/internal/shared/context"
	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
	"github.com/anstar94/member-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) Register(c *gin.Context) {
	var request RegisterRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	memberNo, err := h.memberService.Register(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{MemberNo: memberNo})
}

func (h *MemberHandler) Me(c *gin.Context) {
	memberNo, ok := sharedContext.RequireMemberNo(c)
	if !ok {
		return
	}

	response, err := h.memberService.Get(c.Request.Context(), strconv.FormatUint(uint64(memberNo), 10))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

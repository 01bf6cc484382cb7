package auth

import (
	"net/http"

	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
	"github.com/anstar94/member-api-server/internal/shared/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	sess := sessions.Default(c)
	if err := a.authService.Login(c.Request.Context(), sess, &request); err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *AuthHandler) Status(c *gin.Context) {
	sess := sessions.Default(c)
	c.JSON(http.StatusOK, StatusResponse{
		LoggedIn: a.authService.IsLoggedIn(sess),
	})
}

// Me returns the logged-in member, or an empty object when not logged in.
func (a *AuthHandler) Me(c *gin.Context) {
	sess := sessions.Default(c)

	response, err := a.authService.CurrentMember(c.Request.Context(), sess)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	if response == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, response)
}

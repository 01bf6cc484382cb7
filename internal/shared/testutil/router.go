package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anstar94/member-api-server/internal/shared/validator"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const testSessionSecret = "test-session-secret-key-must-be-32-chars"

// SessionCookieName is the session cookie used by test routers
const SessionCookieName = "member_session"

// SetupTestRouter creates a test Gin router with a cookie session store
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Register custom validators for testing
	_ = validator.RegisterAll()

	router := gin.New()

	store := cookie.NewStore([]byte(testSessionSecret))
	router.Use(sessions.Sessions(SessionCookieName, store))

	return router
}

// TestRequest describes an HTTP request made in tests
type TestRequest struct {
	Method  string
	URL     string
	Body    interface{}
	Cookies []*http.Cookie
}

// ExecuteRequest executes a test HTTP request and returns the response
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	httpReq.Header.Set("Content-Type", "application/json")
	for _, c := range req.Cookies {
		httpReq.AddCookie(c)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse parses the JSON response body into the given struct
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}

// SessionCookies extracts the session cookies set by a previous response,
// so a follow-up request can reuse the logged-in session.
func SessionCookies(t *testing.T, recorder *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()

	res := recorder.Result()
	defer res.Body.Close()

	return res.Cookies()
}

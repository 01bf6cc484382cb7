package auth_test

import (
	"net/http"
	"testing"

	"github.com/anstar94/member-api-server/internal/auth"
	"github.com/anstar94/member-api-server/internal/member"
	sharedError "github.com/anstar94/member-api-server/internal/shared/error"
	"github.com/anstar94/member-api-server/internal/shared/middleware"
	"github.com/anstar94/member-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAuthAPI wires the full signup/login/status/me surface onto a test router
func setupAuthAPI(t *testing.T) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	memberRepository := member.NewMemberRepository()
	memberService := member.NewMemberService(db, memberRepository)
	authService := auth.NewAuthService(db, memberRepository, memberService)

	memberHandler := member.NewMemberHandler(memberService)
	authHandler := auth.NewAuthHandler(authService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/members", memberHandler.Register)
	router.POST("/api/v1/auth/login", authHandler.Login)
	router.GET("/api/v1/auth/status", authHandler.Status)
	router.GET("/api/v1/auth/me", authHandler.Me)

	protected := router.Group("/api/v1/members")
	protected.Use(middleware.RequireLogin())
	protected.GET("/me", memberHandler.Me)

	return router
}

// registerTester creates the tester01 member through the API
func registerTester(t *testing.T, router *gin.Engine) {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body: member.RegisterRequest{
			MemberID:        "tester01",
			Password:        "Abcdef1!",
			PasswordConfirm: "Abcdef1!",
			Name:            "Tester",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
}

func TestLoginAPI_EndToEnd(t *testing.T) {
	// Given
	router := setupAuthAPI(t)
	registerTester(t, router)

	// When: 로그인
	loginRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			MemberID: "tester01",
			Password: "Abcdef1!",
		},
	})

	// Then: 성공 + 세션 쿠키 발급
	require.Equal(t, http.StatusNoContent, loginRecorder.Code)
	cookies := testutil.SessionCookies(t, loginRecorder)
	require.NotEmpty(t, cookies)

	// When: 세션 쿠키로 로그인 상태 확인
	statusRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/auth/status",
		Cookies: cookies,
	})

	// Then
	require.Equal(t, http.StatusOK, statusRecorder.Code)
	var status auth.StatusResponse
	testutil.ParseResponse(t, statusRecorder, &status)
	assert.True(t, status.LoggedIn)

	// When: 세션 쿠키로 내 정보 조회
	meRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/members/me",
		Cookies: cookies,
	})

	// Then
	require.Equal(t, http.StatusOK, meRecorder.Code)
	var me member.MemberResponse
	testutil.ParseResponse(t, meRecorder, &me)
	assert.Equal(t, "tester01", me.MemberID)
	assert.Equal(t, "Tester", me.Name)
	assert.Positive(t, me.MemberNo)
}

func TestLoginAPI_WrongPassword(t *testing.T) {
	// Given
	router := setupAuthAPI(t)
	registerTester(t, router)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			MemberID: "tester01",
			Password: "wrongpass",
		},
	})

	// Then
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
	assert.Equal(t, "아이디 또는 비밀번호가 일치하지 않습니다.", errorResponse.Message)
}

func TestLoginAPI_UnknownMemberSameResponse(t *testing.T) {
	// Given: 존재하지 않는 아이디와 비밀번호 불일치가 같은 응답을 받는다
	router := setupAuthAPI(t)
	registerTester(t, router)

	// When
	unknownRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			MemberID: "nosuchuser",
			Password: "Abcdef1!",
		},
	})
	wrongPwRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			MemberID: "tester01",
			Password: "wrongpass",
		},
	})

	// Then
	assert.Equal(t, http.StatusUnauthorized, unknownRecorder.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPwRecorder.Code)
	assert.JSONEq(t, wrongPwRecorder.Body.String(), unknownRecorder.Body.String())
}

func TestLoginAPI_FailureDoesNotEstablishSession(t *testing.T) {
	// Given
	router := setupAuthAPI(t)
	registerTester(t, router)

	// When: 로그인 실패 후 상태 확인
	loginRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			MemberID: "tester01",
			Password: "wrongpass",
		},
	})
	require.Equal(t, http.StatusUnauthorized, loginRecorder.Code)

	statusRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/auth/status",
		Cookies: testutil.SessionCookies(t, loginRecorder),
	})

	// Then
	require.Equal(t, http.StatusOK, statusRecorder.Code)
	var status auth.StatusResponse
	testutil.ParseResponse(t, statusRecorder, &status)
	assert.False(t, status.LoggedIn)
}

func TestStatusAPI_WithoutSession(t *testing.T) {
	// Given
	router := setupAuthAPI(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/auth/status",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var status auth.StatusResponse
	testutil.ParseResponse(t, recorder, &status)
	assert.False(t, status.LoggedIn)
}

func TestMeAPI_WithoutSessionReturnsEmpty(t *testing.T) {
	// Given
	router := setupAuthAPI(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/auth/me",
	})

	// Then: 로그인하지 않았으면 빈 객체
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "{}", recorder.Body.String())
}

func TestLoginAPI_MissingFields(t *testing.T) {
	// Given
	router := setupAuthAPI(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   map[string]string{"memberId": "tester01"},
	})

	// Then
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Message)
}

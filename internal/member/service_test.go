package member_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anstar94/member-api-server/internal/member"
	"github.com/anstar94/member-api-server/internal/model"
	"github.com/anstar94/member-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupMemberService creates a member service backed by an in-memory database
func setupMemberService(t *testing.T) (*member.MemberService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	return member.NewMemberService(db, member.NewMemberRepository()), db
}

func validRegisterRequest() *member.RegisterRequest {
	return &member.RegisterRequest{
		MemberID:        "tester01",
		Password:        "Abcdef1!",
		PasswordConfirm: "Abcdef1!",
		Name:            "Tester",
	}
}

func TestRegister_Success(t *testing.T) {
	// Given
	service, _ := setupMemberService(t)

	// When
	memberNo, err := service.Register(context.Background(), validRegisterRequest())

	// Then
	require.NoError(t, err)
	assert.Positive(t, memberNo)
}

func TestRegister_NormalizesCellPhone(t *testing.T) {
	// Given
	service, db := setupMemberService(t)

	request := validRegisterRequest()
	request.CellPhone = "010-1234-5678"

	// When
	memberNo, err := service.Register(context.Background(), request)

	// Then: 숫자만 저장된다
	require.NoError(t, err)

	var saved model.Member
	require.NoError(t, db.Where("member_no = ?", memberNo).First(&saved).Error)
	require.NotNil(t, saved.CellPhone)
	assert.Equal(t, "01012345678", *saved.CellPhone)
}

func TestRegister_HashesPassword(t *testing.T) {
	// Given
	service, db := setupMemberService(t)

	// When
	memberNo, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// Then: 원본 비밀번호는 저장되지 않는다
	var saved model.Member
	require.NoError(t, db.Where("member_no = ?", memberNo).First(&saved).Error)
	assert.NotEmpty(t, saved.Password)
	assert.NotEqual(t, "Abcdef1!", saved.Password)
}

func TestRegister_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(r *member.RegisterRequest)
		wantErr error
	}{
		{
			name:    "Missing memberId",
			mutate:  func(r *member.RegisterRequest) { r.MemberID = "  " },
			wantErr: member.ErrMemberIDRequired,
		},
		{
			name:    "Missing password",
			mutate:  func(r *member.RegisterRequest) { r.Password = "" },
			wantErr: member.ErrPasswordRequired,
		},
		{
			name:    "Missing passwordConfirm",
			mutate:  func(r *member.RegisterRequest) { r.PasswordConfirm = "" },
			wantErr: member.ErrPasswordConfirmRequired,
		},
		{
			name:    "Missing name",
			mutate:  func(r *member.RegisterRequest) { r.Name = " " },
			wantErr: member.ErrNameRequired,
		},
		{
			name:    "MemberId shorter than 6",
			mutate:  func(r *member.RegisterRequest) { r.MemberID = "abc12" },
			wantErr: member.ErrMemberIDTooShort,
		},
		{
			name:    "MemberId with non-alphanumeric characters",
			mutate:  func(r *member.RegisterRequest) { r.MemberID = "tester-01" },
			wantErr: member.ErrMemberIDBadFormat,
		},
		{
			name:    "MemberId with Korean characters",
			mutate:  func(r *member.RegisterRequest) { r.MemberID = "테스터아이디" },
			wantErr: member.ErrMemberIDBadFormat,
		},
		{
			name: "Password shorter than 8",
			mutate: func(r *member.RegisterRequest) {
				r.Password = "Ab1!"
				r.PasswordConfirm = "Ab1!"
			},
			wantErr: member.ErrPasswordTooShort,
		},
		{
			name: "Password without symbol",
			mutate: func(r *member.RegisterRequest) {
				r.Password = "Abcdefg1"
				r.PasswordConfirm = "Abcdefg1"
			},
			wantErr: member.ErrPasswordTooSimple,
		},
		{
			name: "Password without digit",
			mutate: func(r *member.RegisterRequest) {
				r.Password = "Abcdefg!"
				r.PasswordConfirm = "Abcdefg!"
			},
			wantErr: member.ErrPasswordTooSimple,
		},
		{
			name: "Password confirm mismatch",
			mutate: func(r *member.RegisterRequest) {
				r.PasswordConfirm = "Abcdef1@"
			},
			wantErr: member.ErrPasswordMismatch,
		},
		{
			name:    "Invalid cell phone",
			mutate:  func(r *member.RegisterRequest) { r.CellPhone = "02-123-4567" },
			wantErr: member.ErrCellPhoneBadFormat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			service, _ := setupMemberService(t)

			request := validRegisterRequest()
			tc.mutate(request)

			// When
			_, err := service.Register(context.Background(), request)

			// Then
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegister_DuplicateMemberID(t *testing.T) {
	// Given
	service, _ := setupMemberService(t)

	_, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// When: 다른 필드가 모두 달라도 아이디가 같으면 실패한다
	duplicate := &member.RegisterRequest{
		MemberID:        "tester01",
		Password:        "Zyxwvu9&",
		PasswordConfirm: "Zyxwvu9&",
		Name:            "Another",
	}
	_, err = service.Register(context.Background(), duplicate)

	// Then
	require.Error(t, err)
	assert.ErrorIs(t, err, member.ErrMemberAlreadyExists)
}

func TestRegister_DuplicateBeforePasswordPolicy(t *testing.T) {
	// Given
	service, _ := setupMemberService(t)

	_, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// When: 중복 체크가 비밀번호 정책보다 먼저 실행된다
	duplicate := &member.RegisterRequest{
		MemberID:        "tester01",
		Password:        "short",
		PasswordConfirm: "short",
		Name:            "Another",
	}
	_, err = service.Register(context.Background(), duplicate)

	// Then
	assert.ErrorIs(t, err, member.ErrMemberAlreadyExists)
}

func TestCheckPassword(t *testing.T) {
	testCases := []struct {
		name            string
		password        string
		passwordConfirm string
		wantErr         error
	}{
		{"Valid password", "Abcdef1!", "Abcdef1!", nil},
		{"Too short", "Ab1!", "Ab1!", member.ErrPasswordTooShort},
		{"No letter", "12345678!", "12345678!", member.ErrPasswordTooSimple},
		{"No digit", "Abcdefg!", "Abcdefg!", member.ErrPasswordTooSimple},
		{"No symbol", "Abcdefg1", "Abcdefg1", member.ErrPasswordTooSimple},
		{"Symbol outside allowed set", "Abcdefg1-", "Abcdefg1-", member.ErrPasswordTooSimple},
		{"Confirm mismatch", "Abcdef1!", "Abcdef1@", member.ErrPasswordMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := member.CheckPassword(tc.password, tc.passwordConfirm)

			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestCheckCellPhone(t *testing.T) {
	testCases := []struct {
		name       string
		cellPhone  string
		normalized string
		wantErr    bool
	}{
		{"Dashed mobile number", "010-1234-5678", "01012345678", false},
		{"Digits only", "01112345678", "01112345678", false},
		{"Ten digit mobile number", "016-123-4567", "0161234567", false},
		{"Seoul landline", "02-123-4567", "", true},
		{"Invalid third digit", "012-1234-5678", "", true},
		{"Too short", "010-12-34", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, err := member.CheckCellPhone(tc.cellPhone)

			if tc.wantErr {
				assert.ErrorIs(t, err, member.ErrCellPhoneBadFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.normalized, normalized)
		})
	}
}

func TestGet_ByMemberID(t *testing.T) {
	// Given
	service, _ := setupMemberService(t)

	memberNo, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// When: 숫자가 아닌 식별자는 아이디로 조회한다
	response, err := service.Get(context.Background(), "tester01")

	// Then
	require.NoError(t, err)
	assert.Equal(t, memberNo, response.MemberNo)
	assert.Equal(t, "tester01", response.MemberID)
	assert.Equal(t, "Tester", response.Name)
}

func TestGet_ByMemberNo(t *testing.T) {
	// Given
	service, _ := setupMemberService(t)

	memberNo, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// When: 숫자 식별자는 회원번호로 조회한다
	response, err := service.Get(context.Background(), "1")

	// Then
	require.NoError(t, err)
	assert.Equal(t, memberNo, response.MemberNo)
	assert.Equal(t, "tester01", response.MemberID)
}

func TestGet_NumericIdentifierNeverMatchesMemberID(t *testing.T) {
	// Given: 숫자로만 된 식별자는 회원번호 조회로만 해석된다
	service, _ := setupMemberService(t)

	_, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// When: 존재하지 않는 회원번호
	_, err = service.Get(context.Background(), "999")

	// Then
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestGet_NotFound(t *testing.T) {
	// Given
	service, _ := setupMemberService(t)

	// When
	_, err := service.Get(context.Background(), "nosuchuser")

	// Then
	require.Error(t, err)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestGet_RepeatedCallsReturnSameValues(t *testing.T) {
	// Given
	service, _ := setupMemberService(t)

	request := validRegisterRequest()
	request.CellPhone = "010-1234-5678"
	_, err := service.Register(context.Background(), request)
	require.NoError(t, err)

	// When
	first, err := service.Get(context.Background(), "tester01")
	require.NoError(t, err)
	second, err := service.Get(context.Background(), "tester01")
	require.NoError(t, err)

	// Then
	assert.Equal(t, first, second)
}

func TestRegister_RollbackOnDuplicate(t *testing.T) {
	// Given
	service, db := setupMemberService(t)

	_, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	// When
	_, err = service.Register(context.Background(), validRegisterRequest())
	require.Error(t, err)
	require.True(t, errors.Is(err, member.ErrMemberAlreadyExists))

	// Then: 실패한 가입은 회원 수를 늘리지 않는다
	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

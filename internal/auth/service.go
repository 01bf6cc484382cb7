package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/anstar94/member-api-server/internal/member"
	"github.com/anstar94/member-api-server/internal/shared/logger"
	sharedSession "github.com/anstar94/member-api-server/internal/shared/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	memberService    *member.MemberService
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, memberService *member.MemberService) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		memberService:    memberService,
	}
}

// Login verifies the credentials and writes the member number into the session.
// 세션은 호출자가 넘긴다 (전역 세션 상태 없음).
func (a *AuthService) Login(ctx context.Context, sess sharedSession.Session, request *LoginRequest) error {
	log := logger.FromContext(ctx)

	// 1. 아이디로 회원 정보 조회
	found, err := a.memberRepository.FindByMemberID(ctx, a.db, request.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - 존재하지 않는 회원", "member_id", logger.MaskMemberID(request.MemberID))
			return fmt.Errorf("login: %w", ErrUnknownMemberID)
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. 비밀번호 일치 여부 체크
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - 비밀번호 불일치", "member_id", logger.MaskMemberID(request.MemberID))
		return fmt.Errorf("login: %w", ErrPasswordMismatch)
	}

	// 3. 세션에 회원번호 설정
	sess.Set(sharedSession.MemberNoKey, found.MemberNo)
	if err := sess.Save(); err != nil {
		log.Error("세션 저장 실패", "error", err)
		return fmt.Errorf("login: %w", ErrSessionSave)
	}

	log.Info("로그인 성공", "member_id", logger.MaskMemberID(request.MemberID), "member_no", found.MemberNo)
	return nil
}

// IsLoggedIn reports whether the session holds a member number.
func (a *AuthService) IsLoggedIn(sess sharedSession.Session) bool {
	return sharedSession.MemberNo(sess) != 0
}

// CurrentMember returns the logged-in member, or nil when not logged in.
func (a *AuthService) CurrentMember(ctx context.Context, sess sharedSession.Session) (*member.MemberResponse, error) {
	memberNo := sharedSession.MemberNo(sess)
	if memberNo == 0 {
		return nil, nil
	}

	return a.memberService.Get(ctx, strconv.FormatUint(uint64(memberNo), 10))
}

package member

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/anstar94/member-api-server/internal/model"
	"github.com/anstar94/member-api-server/internal/shared/database"
	"github.com/anstar94/member-api-server/internal/shared/logger"
	"github.com/anstar94/member-api-server/internal/shared/validator"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minMemberIDLen = 6

var (
	numericRegex        = regexp.MustCompile(`^[0-9]+$`)
	passwordLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	passwordDigitRegex  = regexp.MustCompile(`[0-9]`)
	passwordSymbolRegex = regexp.MustCompile(`[~!@#$%^&*()]`)
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

// Register validates the signup input and creates the member row.
// 검증 순서 (첫 번째 위반에서 중단):
//  1. 필수 항목 (아이디, 비밀번호, 비밀번호 확인, 회원명)
//  2. 아이디 자리수 (6자리 이상)
//  3. 아이디 형식 (알파벳 + 숫자만 허용)
//  4. 아이디 중복 여부
//  5. 비밀번호 정책 + 비밀번호 확인
//  6. 휴대폰번호 (선택사항, 입력시 형식 체크 후 숫자만 저장)
//
// Returns the assigned member number on success.
func (s *MemberService) Register(ctx context.Context, request *RegisterRequest) (uint32, error) {
	log := logger.FromContext(ctx)

	memberID := strings.TrimSpace(request.MemberID)
	name := strings.TrimSpace(request.Name)

	// 1. 필수 항목 체크
	if memberID == "" {
		return 0, fmt.Errorf("register: %w", ErrMemberIDRequired)
	}
	if strings.TrimSpace(request.Password) == "" {
		return 0, fmt.Errorf("register: %w", ErrPasswordRequired)
	}
	if strings.TrimSpace(request.PasswordConfirm) == "" {
		return 0, fmt.Errorf("register: %w", ErrPasswordConfirmRequired)
	}
	if name == "" {
		return 0, fmt.Errorf("register: %w", ErrNameRequired)
	}

	// 2. 아이디 자리수 체크
	if len(memberID) < minMemberIDLen {
		return 0, fmt.Errorf("register: %w", ErrMemberIDTooShort)
	}

	// 3. 아이디 형식 체크
	if !validator.IsValidMemberID(memberID) {
		return 0, fmt.Errorf("register: %w", ErrMemberIDBadFormat)
	}

	var memberNo uint32
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		// 4. 아이디 중복 여부 체크 (fast path, 최종 보장은 unique index)
		exists, err := s.memberRepository.IsExist(ctx, tx, memberID)
		if err != nil {
			log.Error("아이디 중복 확인 실패", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("이미 가입된 아이디", "member_id", logger.MaskMemberID(memberID))
			return fmt.Errorf("register: %w", ErrMemberAlreadyExists)
		}

		// 5. 비밀번호 체크
		if err := CheckPassword(request.Password, request.PasswordConfirm); err != nil {
			return err
		}

		// 6. 휴대폰번호 체크 (선택사항)
		cellPhone := strings.TrimSpace(request.CellPhone)
		if cellPhone != "" {
			normalized, err := CheckCellPhone(cellPhone)
			if err != nil {
				return err
			}
			cellPhone = normalized
		}

		// 7. 비밀번호 해시 처리 (bcrypt cost 10)
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("비밀번호 해시 실패", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		member := model.NewMember(memberID, string(hashedPassword), name, cellPhone)
		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// check-then-insert race: unique index가 최종 중재자
				log.Warn("아이디 중복 (insert 시점)", "member_id", logger.MaskMemberID(memberID))
				return fmt.Errorf("register: %w", ErrMemberAlreadyExists)
			}
			log.Error("회원 생성 실패", "error", err)
			return fmt.Errorf("create member: %w", ErrRegistrationFailed)
		}

		memberNo = member.MemberNo
		log.Info("회원가입 성공",
			"member_id", logger.MaskMemberID(memberID),
			"member_no", member.MemberNo,
			"cell_phone", logger.MaskPhone(cellPhone),
		)
		return nil
	})

	if err != nil {
		return 0, err
	}

	return memberNo, nil
}

// CheckPassword applies the password policy.
// 8자리 이상, 알파벳 + 숫자 + 특수문자(~!@#$%^&*()) 포함, 비밀번호 확인 일치.
func CheckPassword(password, passwordConfirm string) error {
	if len(password) < 8 {
		return fmt.Errorf("check password: %w", ErrPasswordTooShort)
	}

	if !passwordLetterRegex.MatchString(password) ||
		!passwordDigitRegex.MatchString(password) ||
		!passwordSymbolRegex.MatchString(password) {
		return fmt.Errorf("check password: %w", ErrPasswordTooSimple)
	}

	if password != passwordConfirm {
		return fmt.Errorf("check password: %w", ErrPasswordMismatch)
	}

	return nil
}

// CheckCellPhone validates a Korean mobile number and returns it normalized
// to digits only (as stored).
func CheckCellPhone(cellPhone string) (string, error) {
	normalized := validator.NormalizePhone(cellPhone)
	if !validator.IsValidPhone(normalized) {
		return "", fmt.Errorf("check cell phone: %w", ErrCellPhoneBadFormat)
	}
	return normalized, nil
}

// Get looks up a member by a single identifier.
// 정수이면 회원번호(member_no), 아니면 아이디(member_id)로 조회한다.
func (s *MemberService) Get(ctx context.Context, identifier string) (*MemberResponse, error) {
	var (
		found *model.Member
		err   error
	)

	if numericRegex.MatchString(identifier) {
		no, parseErr := strconv.ParseUint(identifier, 10, 32)
		if parseErr != nil {
			return nil, fmt.Errorf("회원번호 파싱 실패 identifier=%s %w", identifier, ErrMemberNotFound)
		}
		found, err = s.memberRepository.FindByMemberNo(ctx, s.db, uint32(no))
	} else {
		found, err = s.memberRepository.FindByMemberID(ctx, s.db, identifier)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 identifier=%s %w", identifier, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	return toMemberResponse(found), nil
}

func toMemberResponse(m *model.Member) *MemberResponse {
	response := &MemberResponse{
		MemberNo: m.MemberNo,
		MemberID: m.MemberID,
		Name:     m.Name,
	}
	if m.CellPhone != nil {
		response.CellPhone = *m.CellPhone
	}
	return response
}

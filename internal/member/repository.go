package member

import (
	"context"

	"github.com/anstar94/member-api-server/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, memberID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("member_id = ?", memberID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("member_id = ?", memberID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByMemberNo(ctx context.Context, db *gorm.DB, memberNo uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("member_no = ?", memberNo).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

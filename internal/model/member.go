package model

// Member represents a registered user in the system
// member_no is the surrogate key (auto-increment), member_id the natural key
type Member struct {
	// Primary key - MySQL AUTO_INCREMENT
	MemberNo uint32 `gorm:"column:member_no;primaryKey;autoIncrement"`

	// Core fields
	MemberID  string  `gorm:"column:member_id;type:VARCHAR(50);not null;uniqueIndex:idx_member_member_id"` // 아이디 (unique, 영문+숫자 6자리 이상)
	Password  string  `gorm:"column:password;type:VARCHAR(60);not null"`                                   // 암호화된 비밀번호 (bcrypt)
	Name      string  `gorm:"column:name;type:VARCHAR(100);not null"`                                      // 회원명
	CellPhone *string `gorm:"column:cell_phone;type:VARCHAR(20)"`                                          // 휴대폰 번호 (선택, 숫자만 저장)

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance
// cellPhone may be empty; it is stored as NULL in that case
func NewMember(memberID, hashedPassword, name, cellPhone string) *Member {
	m := &Member{
		MemberID: memberID,
		Password: hashedPassword, // This should be hashed password
		Name:     name,
	}
	if cellPhone != "" {
		m.CellPhone = &cellPhone
	}
	return m
}

package member

// RegisterRequest carries binding tags as the outer guard; the service
// applies the full ordered rule chain again (trim 포함) and stays authoritative.
type RegisterRequest struct {
	MemberID        string `json:"memberId" binding:"required,min=6,memberid"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
	Name            string `json:"name" binding:"required"`
	CellPhone       string `json:"cellPhone" binding:"omitempty,phone"`
}

type RegisterResponse struct {
	MemberNo uint32 `json:"memberNo"`
}

type MemberResponse struct {
	MemberNo  uint32 `json:"memberNo"`
	MemberID  string `json:"memberId"`
	Name      string `json:"name"`
	CellPhone string `json:"cellPhone,omitempty"`
}

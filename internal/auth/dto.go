package auth

type LoginRequest struct {
	MemberID string `json:"memberId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type StatusResponse struct {
	LoggedIn bool `json:"loggedIn"`
}

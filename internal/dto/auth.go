package dto

// LoginRequest defines the credentials for the session login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the authenticated profile after the cookie is set.
type LoginResponse struct {
	User AdminResponse `json:"user"`
}

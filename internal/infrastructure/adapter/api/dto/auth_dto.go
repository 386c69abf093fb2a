package dto

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse echoes the created credential without the password
type RegisterResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

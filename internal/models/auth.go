package models

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Role     UserRole `json:"role" validate:"required"`
}

// TokenResponse is the login payload returned by POST /token.
type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	UserRole    UserRole `json:"user_role"`
	UserID      int64    `json:"user_id"`
}

// JWTClaims is the access token payload. The registered subject carries the
// user's email; tokens are stateless and cannot be revoked before expiry.
type JWTClaims struct {
	UserID int64    `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Email returns the subject claim.
func (c *JWTClaims) Email() string {
	return c.Subject
}

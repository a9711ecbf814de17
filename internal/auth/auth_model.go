package auth

import "github.com/jogajunto/backend/internal/player"

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name     string        `json:"name" binding:"required,min=2,max=100"`
	Email    string        `json:"email" binding:"required,email"`
	Phone    string        `json:"phone" binding:"required,min=8,max=20"`
	Password string        `json:"password" binding:"required,min=8,max=72"`
	Gender   player.Gender `json:"gender" binding:"required,oneof=male female"`
}

// LoginInput is the payload for authenticating.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshInput carries a refresh token to exchange for a new token pair.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair is returned on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

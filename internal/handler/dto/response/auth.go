package response

import (
	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID       uuid.UUID `json:"userId"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

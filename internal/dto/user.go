package dto

import (
	"time"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
)

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Credits   int64     `json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreditBalanceResponse wraps a user's remaining AI credit balance.
type CreditBalanceResponse struct {
	Credits int64 `json:"credits"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Credits:   u.Credits,
		CreatedAt: u.CreatedAt,
	}
}

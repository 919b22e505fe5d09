package dto

import (
	"time"

	"github.com/spec-kit/gas-delivery/internal/domain"
)

// RegisterRequest payload for new customers.
type RegisterRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

// UpdateProfileRequest replaces the four mutable profile fields. Fields the
// caller omits are written as empty (full-replace semantics).
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	ProfilePic string `json:"profilePic"`
}

// UserProfile is the password-free view of a user.
type UserProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Mobile     string    `json:"mobile,omitempty"`
	Address    string    `json:"address,omitempty"`
	ProfilePic string    `json:"profilePic,omitempty"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewUserProfile strips the password from a user record.
func NewUserProfile(user *domain.User) UserProfile {
	return UserProfile{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Mobile:     user.Mobile,
		Address:    user.Address,
		ProfilePic: user.ProfilePic,
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

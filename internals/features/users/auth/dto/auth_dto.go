package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "uniportal_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3"` // username or email
	Password   string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserProfile `json:"user"`
}

type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Roles     []string  `json:"roles"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserProfile(u *userModel.UserModel) UserProfile {
	return UserProfile{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FullName:  u.FullName,
		Roles:     append([]string(nil), u.Roles...),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

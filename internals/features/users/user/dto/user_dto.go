package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "uniportal_backend/internals/features/users/user/model"
)

type ModuleLinkRequest struct {
	ModuleID    uuid.UUID `json:"module_id" validate:"required"`
	RoleContext string    `json:"role_context" validate:"required,oneof=Student Lecturer Coordinator"`
}

type RegisterUserRequest struct {
	UserName    string              `json:"user_name" validate:"required,min=3,max=50"`
	Email       string              `json:"email" validate:"required,email"`
	FullName    string              `json:"full_name" validate:"required,max=255"`
	Password    string              `json:"password" validate:"required,min=8"`
	Roles       []string            `json:"roles" validate:"required,min=1,dive,oneof=Student Lecturer Coordinator Admin"`
	ModuleLinks []ModuleLinkRequest `json:"module_links" validate:"dive"`
}

type UpdateUserRequest struct {
	Email       *string              `json:"email" validate:"omitempty,email"`
	FullName    *string              `json:"full_name" validate:"omitempty,max=255"`
	Roles       []string             `json:"roles" validate:"omitempty,min=1,dive,oneof=Student Lecturer Coordinator Admin"`
	ModuleLinks *[]ModuleLinkRequest `json:"module_links" validate:"omitempty,dive"`
	IsActive    *bool                `json:"is_active"`
}

type ModuleLinkResponse struct {
	ModuleID    uuid.UUID `json:"module_id"`
	RoleContext string    `json:"role_context"`
}

type UserResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserName  string               `json:"user_name"`
	Email     string               `json:"email"`
	FullName  string               `json:"full_name"`
	Roles     []string             `json:"roles"`
	AvatarURL *string              `json:"avatar_url,omitempty"`
	IsActive  bool                 `json:"is_active"`
	CreatedAt time.Time            `json:"created_at"`
	Modules   []ModuleLinkResponse `json:"modules"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	links := make([]ModuleLinkResponse, 0, len(u.Modules))
	for _, m := range u.Modules {
		links = append(links, ModuleLinkResponse{
			ModuleID:    m.UserModuleModuleID,
			RoleContext: m.UserModuleRoleContext,
		})
	}
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FullName:  u.FullName,
		Roles:     append([]string(nil), u.Roles...),
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		Modules:   links,
	}
}

func ToUserResponseList(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

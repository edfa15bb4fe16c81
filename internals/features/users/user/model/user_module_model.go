package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModuleModel links a user to a module together with the role context
// under which the link exists (a user may be Lecturer on one module and
// Coordinator on another).
type UserModuleModel struct {
	UserModuleID          uuid.UUID `gorm:"column:user_module_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_module_id"`
	UserModuleUserID      uuid.UUID `gorm:"column:user_module_user_id;type:uuid;not null;uniqueIndex:idx_user_module_pair" json:"user_module_user_id"`
	UserModuleModuleID    uuid.UUID `gorm:"column:user_module_module_id;type:uuid;not null;uniqueIndex:idx_user_module_pair" json:"user_module_module_id"`
	UserModuleRoleContext string    `gorm:"column:user_module_role_context;type:varchar(20);not null" json:"user_module_role_context"`
	UserModuleCreatedAt   time.Time `gorm:"column:user_module_created_at;autoCreateTime" json:"user_module_created_at"`
}

func (UserModuleModel) TableName() string {
	return "user_modules"
}

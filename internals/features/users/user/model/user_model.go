package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// UserModel represents the users table. Roles is the set of global roles
// (Student/Lecturer/Coordinator/Admin); per-module roles live on the
// user_modules link.
type UserModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string         `gorm:"size:50;uniqueIndex;not null" json:"user_name"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName  string         `gorm:"size:255;not null" json:"full_name"`
	Password  string         `gorm:"not null" json:"-"`
	Roles     pq.StringArray `gorm:"type:text[];not null" json:"roles"`
	AvatarURL *string        `gorm:"size:512" json:"avatar_url,omitempty"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Modules []UserModuleModel `gorm:"foreignKey:UserModuleUserID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u *UserModel) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

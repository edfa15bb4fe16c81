package model

import (
	"time"

	"github.com/google/uuid"
)

// ModuleModel is a course. Semester 0 means a year module (runs across
// both semesters).
type ModuleModel struct {
	ModuleID        uuid.UUID `gorm:"column:module_id;type:uuid;default:gen_random_uuid();primaryKey" json:"module_id"`
	ModuleCode      string    `gorm:"column:module_code;size:20;uniqueIndex;not null" json:"module_code"`
	ModuleName      string    `gorm:"column:module_name;size:255;not null" json:"module_name"`
	ModuleSemester  int       `gorm:"column:module_semester;not null;default:0" json:"module_semester"`
	ModuleCreatedAt time.Time `gorm:"column:module_created_at;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt time.Time `gorm:"column:module_updated_at;autoUpdateTime" json:"module_updated_at"`

	ClassSessions []ClassSessionModel `gorm:"foreignKey:ClassSessionModuleID;constraint:OnDelete:CASCADE" json:"class_sessions,omitempty"`
	Assessments   []AssessmentModel   `gorm:"foreignKey:AssessmentModuleID;constraint:OnDelete:CASCADE" json:"assessments,omitempty"`
}

func (ModuleModel) TableName() string {
	return "modules"
}

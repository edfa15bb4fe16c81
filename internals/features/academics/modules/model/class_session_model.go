package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassSessionModel is one recurring weekly slot of a module. Times are
// stored as "HH:MM" strings, same format the clients submit.
type ClassSessionModel struct {
	ClassSessionID        uuid.UUID `gorm:"column:class_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_session_id"`
	ClassSessionModuleID  uuid.UUID `gorm:"column:class_session_module_id;type:uuid;not null;index" json:"class_session_module_id"`
	ClassSessionVenue     string    `gorm:"column:class_session_venue;size:100;not null" json:"class_session_venue"`
	ClassSessionWeekday   string    `gorm:"column:class_session_weekday;size:10;not null" json:"class_session_weekday"`
	ClassSessionStartTime string    `gorm:"column:class_session_start_time;size:5;not null" json:"class_session_start_time"`
	ClassSessionEndTime   string    `gorm:"column:class_session_end_time;size:5;not null" json:"class_session_end_time"`
	ClassSessionCreatedAt time.Time `gorm:"column:class_session_created_at;autoCreateTime" json:"class_session_created_at"`
}

func (ClassSessionModel) TableName() string {
	return "class_sessions"
}

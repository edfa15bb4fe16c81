package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentModel is a test, exam or hand-in. Timed assessments run from
// start to end at a venue; untimed ones are due-date submissions.
type AssessmentModel struct {
	AssessmentID        uuid.UUID `gorm:"column:assessment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assessment_id"`
	AssessmentModuleID  uuid.UUID `gorm:"column:assessment_module_id;type:uuid;not null;index" json:"assessment_module_id"`
	AssessmentTitle     string    `gorm:"column:assessment_title;size:255;not null" json:"assessment_title"`
	AssessmentVenue     string    `gorm:"column:assessment_venue;size:100" json:"assessment_venue"`
	AssessmentDate      string    `gorm:"column:assessment_date;size:10;not null" json:"assessment_date"` // "YYYY-MM-DD"
	AssessmentStartTime string    `gorm:"column:assessment_start_time;size:5" json:"assessment_start_time"`
	AssessmentEndTime   string    `gorm:"column:assessment_end_time;size:5" json:"assessment_end_time"`
	AssessmentTimed     bool      `gorm:"column:assessment_timed;not null;default:false" json:"assessment_timed"`
	AssessmentCreatedAt time.Time `gorm:"column:assessment_created_at;autoCreateTime" json:"assessment_created_at"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/features/academics/modules/model"
)

type ClassSessionRequest struct {
	Venue     string `json:"venue" validate:"required,max=100"`
	Weekday   string `json:"weekday" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type AssessmentRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Venue     string `json:"venue" validate:"max=100"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Timed     bool   `json:"timed"`
}

type CreateModuleRequest struct {
	Code          string                `json:"code" validate:"required,max=20"`
	Name          string                `json:"name" validate:"required,max=255"`
	Semester      int                   `json:"semester" validate:"min=0,max=2"`
	ClassSessions []ClassSessionRequest `json:"class_sessions" validate:"dive"`
	Assessments   []AssessmentRequest   `json:"assessments" validate:"dive"`
}

// UpdateModuleRequest uses replace semantics: nil slices leave the nested
// rows untouched, non-nil slices replace them wholesale.
type UpdateModuleRequest struct {
	Code          *string                `json:"code" validate:"omitempty,max=20"`
	Name          *string                `json:"name" validate:"omitempty,max=255"`
	Semester      *int                   `json:"semester" validate:"omitempty,min=0,max=2"`
	ClassSessions *[]ClassSessionRequest `json:"class_sessions" validate:"omitempty,dive"`
	Assessments   *[]AssessmentRequest   `json:"assessments" validate:"omitempty,dive"`
}

type ClassSessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Venue     string    `json:"venue"`
	Weekday   string    `json:"weekday"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type AssessmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Timed     bool      `json:"timed"`
}

type ModuleResponse struct {
	ID            uuid.UUID              `json:"id"`
	Code          string                 `json:"code"`
	Name          string                 `json:"name"`
	Semester      int                    `json:"semester"`
	CreatedAt     time.Time              `json:"created_at"`
	ClassSessions []ClassSessionResponse `json:"class_sessions"`
	Assessments   []AssessmentResponse   `json:"assessments"`
}

func ToModuleResponse(m *model.ModuleModel) ModuleResponse {
	sessions := make([]ClassSessionResponse, 0, len(m.ClassSessions))
	for _, s := range m.ClassSessions {
		sessions = append(sessions, ClassSessionResponse{
			ID:        s.ClassSessionID,
			Venue:     s.ClassSessionVenue,
			Weekday:   s.ClassSessionWeekday,
			StartTime: s.ClassSessionStartTime,
			EndTime:   s.ClassSessionEndTime,
		})
	}
	assessments := make([]AssessmentResponse, 0, len(m.Assessments))
	for _, a := range m.Assessments {
		assessments = append(assessments, AssessmentResponse{
			ID:        a.AssessmentID,
			Title:     a.AssessmentTitle,
			Venue:     a.AssessmentVenue,
			Date:      a.AssessmentDate,
			StartTime: a.AssessmentStartTime,
			EndTime:   a.AssessmentEndTime,
			Timed:     a.AssessmentTimed,
		})
	}
	return ModuleResponse{
		ID:            m.ModuleID,
		Code:          m.ModuleCode,
		Name:          m.ModuleName,
		Semester:      m.ModuleSemester,
		CreatedAt:     m.ModuleCreatedAt,
		ClassSessions: sessions,
		Assessments:   assessments,
	}
}

func ToModuleResponseList(modules []model.ModuleModel) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(modules))
	for i := range modules {
		out = append(out, ToModuleResponse(&modules[i]))
	}
	return out
}

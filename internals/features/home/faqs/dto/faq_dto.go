package dto

import (
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/features/home/faqs/model"
)

type CreateFaqRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type UpdateFaqRequest struct {
	Question *string `json:"question" validate:"omitempty,min=1"`
	Answer   *string `json:"answer" validate:"omitempty,min=1"`
}

type FaqResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFaqResponse(f *model.FaqModel) FaqResponse {
	return FaqResponse{
		ID:        f.FaqID,
		Question:  f.FaqQuestion,
		Answer:    f.FaqAnswer,
		CreatedBy: f.FaqCreatedBy,
		CreatedAt: f.FaqCreatedAt,
		UpdatedAt: f.FaqUpdatedAt,
	}
}

func ToFaqResponseList(faqs []model.FaqModel) []FaqResponse {
	out := make([]FaqResponse, 0, len(faqs))
	for i := range faqs {
		out = append(out, ToFaqResponse(&faqs[i]))
	}
	return out
}

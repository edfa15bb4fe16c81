package model

import (
	"time"

	"github.com/google/uuid"
)

type FaqModel struct {
	FaqID        uuid.UUID `gorm:"column:faq_id;type:uuid;default:gen_random_uuid();primaryKey" json:"faq_id"`
	FaqQuestion  string    `gorm:"column:faq_question;type:text;not null" json:"faq_question"`
	FaqAnswer    string    `gorm:"column:faq_answer;type:text;not null" json:"faq_answer"`
	FaqCreatedBy uuid.UUID `gorm:"column:faq_created_by;type:uuid;not null" json:"faq_created_by"`
	FaqCreatedAt time.Time `gorm:"column:faq_created_at;autoCreateTime" json:"faq_created_at"`
	FaqUpdatedAt time.Time `gorm:"column:faq_updated_at;autoUpdateTime" json:"faq_updated_at"`
}

func (FaqModel) TableName() string {
	return "faqs"
}

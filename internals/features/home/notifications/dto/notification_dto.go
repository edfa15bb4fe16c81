package dto

import (
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/features/home/notifications/model"
)

type CreateNotificationRequest struct {
	Type     string     `json:"type" validate:"required"`
	Audience string     `json:"audience" validate:"omitempty"`
	Title    string     `json:"title" validate:"required,max=255"`
	Message  string     `json:"message"`
	ModuleID *uuid.UUID `json:"module_id"`
}

type NotificationResponse struct {
	ID        uuid.UUID              `json:"id"`
	Type      string                 `json:"type"`
	Audience  string                 `json:"audience"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	ModuleID  *uuid.UUID             `json:"module_id,omitempty"`
	CreatedBy uuid.UUID              `json:"created_by"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	Read      bool                   `json:"read"`
}

func ToNotificationResponse(n *model.NotificationModel, read bool) NotificationResponse {
	return NotificationResponse{
		ID:        n.NotificationID,
		Type:      n.NotificationType,
		Audience:  n.NotificationAudience,
		Title:     n.NotificationTitle,
		Message:   n.NotificationMessage,
		ModuleID:  n.NotificationModuleID,
		CreatedBy: n.NotificationCreatedBy,
		Payload:   n.NotificationPayload,
		CreatedAt: n.NotificationCreatedAt,
		Read:      read,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is a single posted notification. Per-recipient read
// state lives in notification_reads, never on this row.
type NotificationModel struct {
	NotificationID        uuid.UUID         `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationType      string            `gorm:"column:notification_type;type:varchar(30);not null" json:"notification_type"`
	NotificationAudience  string            `gorm:"column:notification_audience;type:varchar(20);not null" json:"notification_audience"`
	NotificationTitle     string            `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage   string            `gorm:"column:notification_message;type:text" json:"notification_message"`
	NotificationModuleID  *uuid.UUID        `gorm:"column:notification_module_id;type:uuid;index" json:"notification_module_id,omitempty"`
	NotificationCreatedBy uuid.UUID         `gorm:"column:notification_created_by;type:uuid;not null" json:"notification_created_by"`
	NotificationPayload   datatypes.JSONMap `gorm:"column:notification_payload" json:"notification_payload,omitempty"`
	NotificationCreatedAt time.Time         `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationReadModel marks one notification read for one user; absence
// of a row means unread.
type NotificationReadModel struct {
	NotificationReadID             uuid.UUID `gorm:"column:notification_read_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_read_id"`
	NotificationReadNotificationID uuid.UUID `gorm:"column:notification_read_notification_id;type:uuid;not null;uniqueIndex:idx_notification_read_pair" json:"notification_read_notification_id"`
	NotificationReadUserID         uuid.UUID `gorm:"column:notification_read_user_id;type:uuid;not null;uniqueIndex:idx_notification_read_pair" json:"notification_read_user_id"`
	NotificationReadAt             time.Time `gorm:"column:notification_read_at;autoCreateTime" json:"notification_read_at"`
}

func (NotificationReadModel) TableName() string {
	return "notification_reads"
}

package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"uniportal_backend/internals/constants"
	"uniportal_backend/internals/features/home/notifications/model"
)

// Notifier is the write-side used by other features (module saves,
// repository uploads) to emit automatic notifications.

// EmitBroadcast posts a notification with audience All. Used for the
// broadcast types (ScheduleUpdate, RepositoryUpdate).
func EmitBroadcast(db *gorm.DB, createdBy uuid.UUID, notifType, title, message string) error {
	n := model.NotificationModel{
		NotificationType:      notifType,
		NotificationAudience:  constants.AudienceAll,
		NotificationTitle:     title,
		NotificationMessage:   message,
		NotificationCreatedBy: createdBy,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[ERROR] emit %s notification: %v", notifType, err)
		return err
	}
	return nil
}

// EmitModuleUpdate posts a ModuleUpdate targeted at a module's students,
// carrying before/after values in the payload.
func EmitModuleUpdate(db *gorm.DB, createdBy, moduleID uuid.UUID, moduleCode, title, message string, payload map[string]interface{}) error {
	n := model.NotificationModel{
		NotificationType:      constants.NotifTypeModuleUpdate,
		NotificationAudience:  constants.AudienceModuleStudents,
		NotificationTitle:     EnsureModulePrefix(title, moduleCode),
		NotificationMessage:   message,
		NotificationModuleID:  &moduleID,
		NotificationCreatedBy: createdBy,
		NotificationPayload:   datatypes.JSONMap(payload),
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[ERROR] emit module update notification: %v", err)
		return err
	}
	return nil
}

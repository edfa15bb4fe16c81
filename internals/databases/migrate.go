package database

import (
	"log"

	bookingModel "uniportal_backend/internals/features/academics/bookings/model"
	moduleModel "uniportal_backend/internals/features/academics/modules/model"
	faqModel "uniportal_backend/internals/features/home/faqs/model"
	notifModel "uniportal_backend/internals/features/home/notifications/model"
	repoModel "uniportal_backend/internals/features/repository/model"
	authModel "uniportal_backend/internals/features/users/auth/model"
	userModel "uniportal_backend/internals/features/users/user/model"
)

// Migrate keeps the schema in sync on boot. Order matters: parents before
// join tables.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&moduleModel.ModuleModel{},
		&moduleModel.ClassSessionModel{},
		&moduleModel.AssessmentModel{},
		&userModel.UserModuleModel{},
		&authModel.TokenBlacklistModel{},
		&notifModel.NotificationModel{},
		&notifModel.NotificationReadModel{},
		&bookingModel.LabBookingModel{},
		&repoModel.DocumentModel{},
		&repoModel.RepositoryLinkModel{},
		&faqModel.FaqModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] auto-migrate failed: %v", err)
	}
	log.Println("[INFO] schema migrated.")
}

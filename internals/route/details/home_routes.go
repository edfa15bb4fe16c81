package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	faqRoute "uniportal_backend/internals/features/home/faqs/route"
	notifRoute "uniportal_backend/internals/features/home/notifications/route"
)

func HomeUserRoutes(user fiber.Router, db *gorm.DB) {
	notifRoute.NotificationUserRoutes(user, db)
	faqRoute.FaqUserRoutes(user, db)
}

func HomeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	faqRoute.FaqAdminRoutes(admin, db)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifController "uniportal_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := notifController.NewNotificationController(db)

	user.Get("/notifications", ctrl.Feed)
	user.Post("/notifications", ctrl.Create)
	user.Post("/notifications/:id/read", ctrl.MarkRead)
	user.Delete("/notifications/:id/read", ctrl.MarkUnread)
	user.Delete("/notifications/:id", ctrl.Delete)
}

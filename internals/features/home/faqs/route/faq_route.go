package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	faqController "uniportal_backend/internals/features/home/faqs/controller"
)

func FaqUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := faqController.NewFaqController(db)

	user.Get("/faqs", ctrl.List)
}

func FaqAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := faqController.NewFaqController(db)

	admin.Post("/faqs", ctrl.Create)
	admin.Put("/faqs/:id", ctrl.Update)
	admin.Delete("/faqs/:id", ctrl.Delete)
}

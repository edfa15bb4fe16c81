package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingController "uniportal_backend/internals/features/academics/bookings/controller"
)

func BookingUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := bookingController.NewBookingController(db)

	user.Get("/bookings", ctrl.List)
	user.Post("/bookings", ctrl.Create)
	user.Delete("/bookings/:id", ctrl.Delete)
}

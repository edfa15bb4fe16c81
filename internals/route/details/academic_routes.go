package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingRoute "uniportal_backend/internals/features/academics/bookings/route"
	moduleRoute "uniportal_backend/internals/features/academics/modules/route"
	ossHelper "uniportal_backend/internals/helpers/oss"
)

func AcademicUserRoutes(user fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	moduleRoute.ModuleUserRoutes(user, db, blob)
	bookingRoute.BookingUserRoutes(user, db)
}

func AcademicAdminRoutes(admin fiber.Router, db *gorm.DB) {
	moduleRoute.ModuleAdminRoutes(admin, db)
}

package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "uniportal_backend/internals/features/users/user/route"
	ossHelper "uniportal_backend/internals/helpers/oss"
)

func UserRoutes(user fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	userRoute.UserUserRoutes(user, db, blob)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	userRoute.UserAdminRoutes(admin, db, blob)
}

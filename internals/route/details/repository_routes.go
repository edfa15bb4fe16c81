package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	repoRoute "uniportal_backend/internals/features/repository/route"
	ossHelper "uniportal_backend/internals/helpers/oss"
)

func RepositoryUserRoutes(user fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	repoRoute.RepositoryUserRoutes(user, db, blob)
}

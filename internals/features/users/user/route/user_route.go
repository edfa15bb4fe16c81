package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "uniportal_backend/internals/features/users/user/controller"
	ossHelper "uniportal_backend/internals/helpers/oss"
)

// UserUserRoutes mounts self-service endpoints under the authed group.
func UserUserRoutes(user fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	ctrl := userController.NewUserController(db, blob)

	user.Get("/users/me", ctrl.Me)
	user.Post("/users/me/avatar", ctrl.UploadAvatar)
}

// UserAdminRoutes mounts account management under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	ctrl := userController.NewUserController(db, blob)

	admin.Post("/users", ctrl.Register)
	admin.Get("/users", ctrl.List)
	admin.Get("/users/:id", ctrl.Get)
	admin.Put("/users/:id", ctrl.Update)
	admin.Delete("/users/:id", ctrl.Delete)
	admin.Post("/users/:id/avatar", ctrl.UploadAvatarFor)
}

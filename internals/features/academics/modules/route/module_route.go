package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moduleController "uniportal_backend/internals/features/academics/modules/controller"
	repoController "uniportal_backend/internals/features/repository/controller"
	ossHelper "uniportal_backend/internals/helpers/oss"
)

// ModuleUserRoutes mounts read access and module document handling.
func ModuleUserRoutes(user fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	ctrl := moduleController.NewModuleController(db)
	docCtrl := repoController.NewDocumentController(db, blob)

	user.Get("/modules", ctrl.List)
	user.Get("/modules/mine", ctrl.Mine)
	user.Get("/modules/:id", ctrl.Get)
	user.Get("/modules/:id/documents", docCtrl.ListByModule)
	user.Post("/modules/:id/documents", docCtrl.UploadToModule)
}

// ModuleAdminRoutes mounts module CRUD under the admin group.
func ModuleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := moduleController.NewModuleController(db)

	admin.Post("/modules", ctrl.Create)
	admin.Put("/modules/:id", ctrl.Update)
	admin.Delete("/modules/:id", ctrl.Delete)
}

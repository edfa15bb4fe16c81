package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	repoController "uniportal_backend/internals/features/repository/controller"
	ossHelper "uniportal_backend/internals/helpers/oss"
)

func RepositoryUserRoutes(user fiber.Router, db *gorm.DB, blob ossHelper.BlobService) {
	docCtrl := repoController.NewDocumentController(db, blob)
	linkCtrl := repoController.NewLinkController(db)

	user.Get("/repository/documents", docCtrl.ListRepository)
	user.Post("/repository/documents", docCtrl.UploadToRepository)
	user.Delete("/documents/:id", docCtrl.Delete)

	user.Get("/repository/links", linkCtrl.List)
	user.Post("/repository/links", linkCtrl.Create)
	user.Put("/repository/links/:id", linkCtrl.Update)
	user.Delete("/repository/links/:id", linkCtrl.Delete)
}

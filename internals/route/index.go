package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ossHelper "uniportal_backend/internals/helpers/oss"
	authMw "uniportal_backend/internals/middlewares/auth"
	routeDetails "uniportal_backend/internals/route/details"
)

// SetupRoutes mounts every feature route onto its access group:
// /api/auth is public, /api/u needs a valid token, /api/a needs Admin.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	blob, err := ossHelper.DefaultBlobService()
	if err != nil {
		log.Printf("[ERROR] blob storage unavailable: %v", err)
	}

	api := app.Group("/api")

	log.Println("[INFO] Setting up auth routes...")
	routeDetails.AuthRoutes(api, db)

	log.Println("[INFO] Setting up user group...")
	user := api.Group("/u", authMw.AuthMiddleware(db))

	log.Println("[INFO] Setting up admin group...")
	admin := api.Group("/a", authMw.AuthMiddleware(db), authMw.RequireAdmin())

	log.Println("[INFO] Mounting user routes...")
	routeDetails.UserRoutes(user, db, blob)
	routeDetails.AcademicUserRoutes(user, db, blob)
	routeDetails.HomeUserRoutes(user, db)
	routeDetails.RepositoryUserRoutes(user, db, blob)

	log.Println("[INFO] Mounting admin routes...")
	routeDetails.UserAdminRoutes(admin, db, blob)
	routeDetails.AcademicAdminRoutes(admin, db)
	routeDetails.HomeAdminRoutes(admin, db)
}

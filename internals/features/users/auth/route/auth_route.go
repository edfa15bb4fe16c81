package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "uniportal_backend/internals/features/users/auth/controller"
	"uniportal_backend/internals/middlewares"
	authMw "uniportal_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
}

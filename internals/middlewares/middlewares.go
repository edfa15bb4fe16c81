package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the app-wide middleware chain. Route-level
// middleware (auth, role gates, login limiter) is attached by the route
// groups.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}

package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares aplica la cadena base a toda la app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}

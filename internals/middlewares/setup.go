package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"aseguradora_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra los middlewares base de la app
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}

package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"pustakaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global aplikasi.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}

package logger_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loggerMiddleware "pustakaku_backend/internals/middlewares/logger"
)

// Middleware logger harus transparan: request tetap jalan dan reqid dari
// Locals tidak mengganggu respons.
func Test_LoggerMiddleware_PassesRequestThrough(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("reqid", "test-req-1")
		return c.Next()
	})
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

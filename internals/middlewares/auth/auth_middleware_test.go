package auth_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authMiddleware "pustakaku_backend/internals/middlewares/auth"
)

// Jalur tanpa DB: token hilang / header rusak harus ditolak sebelum
// middleware menyentuh database.
func Test_AuthMiddleware_RejectsBeforeTouchingDB(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing_authorization_header"},
		{name: "not_a_bearer_scheme", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "bearer_without_token", authHeader: "Bearer "},
		{name: "single_word_header", authHeader: "Bearer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/protected", authMiddleware.AuthMiddleware(nil), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

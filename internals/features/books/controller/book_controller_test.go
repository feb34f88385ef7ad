package controller_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pustakaku_backend/internals/features/books/controller"
)

// Payload rusak (JSON tidak valid / tipe field salah) harus dijawab 422,
// bukan 400 — parsing gagal sebelum controller menyentuh database.
func Test_BookController_Create_BadPayloadIs422(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed_json",
			body: `{"book_title": "Dune",`,
		},
		{
			name: "wrong_type_for_year",
			body: `{"book_title":"Dune","book_author":"Frank Herbert","book_isbn":"9780441172719","book_publication_year":"bukan angka"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := controller.NewBookController(nil)
			app := fiber.New()
			app.Post("/api/books", ctrl.Create)

			req := httptest.NewRequest("POST", "/api/books", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

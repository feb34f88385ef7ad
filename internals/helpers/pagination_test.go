package helper_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "pustakaku_backend/internals/helpers"
)

func Test_BuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		perPage        int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"empty_collection", 0, 1, 10, 1, false, false},
		{"single_partial_page", 7, 1, 10, 1, false, false},
		{"exact_page_boundary", 20, 1, 10, 2, true, false},
		{"middle_page", 35, 2, 10, 4, true, true},
		{"last_page", 35, 4, 10, 4, false, true},
		{"zero_page_normalized", 35, 0, 10, 4, true, false},
		{"zero_per_page_falls_back_to_catalog_size", 35, 1, 0, 4, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := helper.BuildPaginationFromPage(tc.total, tc.page, tc.perPage)

			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.wantTotalPages, p.TotalPages)
			assert.Equal(t, tc.wantHasNext, p.HasNext)
			assert.Equal(t, tc.wantHasPrev, p.HasPrev)
		})
	}
}

func Test_ResolvePaging(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantOffset int
	}{
		{"default_page", "/books", 1, 0},
		{"explicit_page", "/books?page=3", 3, 20},
		{"negative_page_normalized", "/books?page=-2", 1, 0},
		{"garbage_page_normalized", "/books?page=abc", 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got helper.Paging
			app := fiber.New()
			app.Get("/books", func(c *fiber.Ctx) error {
				got = helper.ResolvePaging(c, helper.CatalogPerPage)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", tc.target, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, helper.CatalogPerPage, got.PerPage)
			assert.Equal(t, tc.wantOffset, got.Offset)
			assert.Equal(t, helper.CatalogPerPage, got.Limit)
		})
	}
}

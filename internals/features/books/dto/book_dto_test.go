package dto_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "pustakaku_backend/internals/features/books/dto"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validCreateRequest() dto.BookCreateRequest {
	return dto.BookCreateRequest{
		BookTitle:           "Dune",
		BookAuthor:          "Frank Herbert",
		BookISBN:            "9999999999999",
		BookPublicationYear: intPtr(1965),
		BookGenre:           strPtr("Science Fiction"),
	}
}

func Test_BookCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *dto.BookCreateRequest)
		wantField string
	}{
		{
			name:   "valid_request_passes",
			mutate: func(r *dto.BookCreateRequest) {},
		},
		{
			name:      "missing_title",
			mutate:    func(r *dto.BookCreateRequest) { r.BookTitle = "" },
			wantField: "book_title",
		},
		{
			name:      "missing_author",
			mutate:    func(r *dto.BookCreateRequest) { r.BookAuthor = "" },
			wantField: "book_author",
		},
		{
			name:      "missing_isbn",
			mutate:    func(r *dto.BookCreateRequest) { r.BookISBN = "" },
			wantField: "book_isbn",
		},
		{
			name:   "long_formatted_isbn_is_valid",
			mutate: func(r *dto.BookCreateRequest) { r.BookISBN = strings.Repeat("978-0-7432-7356-5,", 3) },
		},
		{
			name:      "isbn_too_long",
			mutate:    func(r *dto.BookCreateRequest) { r.BookISBN = strings.Repeat("9", 256) },
			wantField: "book_isbn",
		},
		{
			name:      "title_too_long",
			mutate:    func(r *dto.BookCreateRequest) { r.BookTitle = strings.Repeat("a", 256) },
			wantField: "book_title",
		},
		{
			name:      "genre_too_long",
			mutate:    func(r *dto.BookCreateRequest) { r.BookGenre = strPtr(strings.Repeat("a", 256)) },
			wantField: "book_genre",
		},
		{
			name:      "year_below_lower_bound",
			mutate:    func(r *dto.BookCreateRequest) { r.BookPublicationYear = intPtr(999) },
			wantField: "book_publication_year",
		},
		{
			name: "year_above_next_year",
			mutate: func(r *dto.BookCreateRequest) {
				r.BookPublicationYear = intPtr(time.Now().Year() + 2)
			},
			wantField: "book_publication_year",
		},
		{
			name: "next_year_is_still_valid",
			mutate: func(r *dto.BookCreateRequest) {
				r.BookPublicationYear = intPtr(time.Now().Year() + 1)
			},
		},
		{
			name:   "year_absent_is_valid",
			mutate: func(r *dto.BookCreateRequest) { r.BookPublicationYear = nil },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			errs := req.Validate()
			if tc.wantField == "" {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, tc.wantField)
			}
		})
	}
}

func Test_BookCreateRequest_Normalize_TrimsAndNils(t *testing.T) {
	req := dto.BookCreateRequest{
		BookTitle:       "  Dune  ",
		BookAuthor:      " Frank Herbert ",
		BookISBN:        " 9780441172719 ",
		BookDescription: strPtr("   "),
		BookGenre:       strPtr(" Science Fiction "),
	}
	req.Normalize()

	assert.Equal(t, "Dune", req.BookTitle)
	assert.Equal(t, "Frank Herbert", req.BookAuthor)
	assert.Equal(t, "9780441172719", req.BookISBN)
	assert.Nil(t, req.BookDescription)
	require.NotNil(t, req.BookGenre)
	assert.Equal(t, "Science Fiction", *req.BookGenre)
}

func Test_ToModel_NewBookStartsAvailable(t *testing.T) {
	req := validCreateRequest()
	b := req.ToModel()

	assert.True(t, b.BookIsAvailable)
	assert.Nil(t, b.BookBorrowerUserID)
	assert.Nil(t, b.BookBorrowedAt)
	assert.Nil(t, b.BookDueDate)
	assert.Equal(t, req.BookTitle, b.BookTitle)
	assert.Equal(t, req.BookISBN, b.BookISBN)
}

func Test_ApplyToModel_DoesNotTouchLendingFields(t *testing.T) {
	req := validCreateRequest()
	b := req.ToModel()
	borrower := uuid.New()
	now := time.Now().UTC()
	require.NoError(t, b.MarkBorrowed(borrower, now))

	upd := dto.BookUpdateRequest{
		BookTitle:  "Dune Messiah",
		BookAuthor: "Frank Herbert",
		BookISBN:   "9780593098233",
	}
	upd.ApplyToModel(b)

	assert.Equal(t, "Dune Messiah", b.BookTitle)
	assert.False(t, b.BookIsAvailable)
	require.NotNil(t, b.BookBorrowerUserID)
	assert.Equal(t, borrower, *b.BookBorrowerUserID)
	assert.NotNil(t, b.BookBorrowedAt)
	assert.NotNil(t, b.BookDueDate)
}

func Test_ParseBooksListQuery(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		wantSearch    string
		wantGenre     string
		wantAvailable *bool
	}{
		{
			name:   "no_filters",
			target: "/books",
		},
		{
			name:       "search_and_genre",
			target:     "/books?search=Gatsby&genre=Classic+Literature",
			wantSearch: "Gatsby",
			wantGenre:  "Classic Literature",
		},
		{
			name:          "available_true",
			target:        "/books?available=true",
			wantAvailable: boolPtr(true),
		},
		{
			name:          "available_numeric_zero",
			target:        "/books?available=0",
			wantAvailable: boolPtr(false),
		},
		{
			name:   "available_invalid_is_ignored",
			target: "/books?available=banana",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got dto.BooksListQuery
			app := fiber.New()
			app.Get("/books", func(c *fiber.Ctx) error {
				got = dto.ParseBooksListQuery(c)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", tc.target, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			assert.Equal(t, tc.wantSearch, got.Search)
			assert.Equal(t, tc.wantGenre, got.Genre)
			if tc.wantAvailable == nil {
				assert.Nil(t, got.Available)
			} else {
				require.NotNil(t, got.Available)
				assert.Equal(t, *tc.wantAvailable, *got.Available)
			}
		})
	}
}

func boolPtr(v bool) *bool { return &v }

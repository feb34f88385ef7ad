// file: internals/features/books/dto/book_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "pustakaku_backend/internals/features/books/model"
	userModel "pustakaku_backend/internals/features/users/user/model"
)

var validate = validator.New()

// MinPublicationYear: batas bawah tahun terbit yang masuk akal.
const MinPublicationYear = 1000

// MaxPublicationYear: batas atas dinamis (tahun depan).
func MaxPublicationYear() int {
	return time.Now().Year() + 1
}

/* =========================================================
   QUERY (LIST)
   ========================================================= */

type BooksListQuery struct {
	Search    string
	Available *bool
	Genre     string
}

// ParseBooksListQuery membaca ?search= &available= &genre= .
// Nilai available yang tidak bisa di-parse dianggap tidak ada filter.
func ParseBooksListQuery(c *fiber.Ctx) BooksListQuery {
	q := BooksListQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Genre:  strings.TrimSpace(c.Query("genre")),
	}
	if raw := strings.TrimSpace(c.Query("available")); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			q.Available = &b
		}
	}
	return q
}

/* =========================================================
   REQUEST
   ========================================================= */

type BookCreateRequest struct {
	BookTitle           string  `json:"book_title"            validate:"required,max=255"`
	BookAuthor          string  `json:"book_author"           validate:"required,max=255"`
	BookISBN            string  `json:"book_isbn"             validate:"required,max=255"`
	BookDescription     *string `json:"book_description,omitempty"`
	BookPublicationYear *int    `json:"book_publication_year,omitempty"`
	BookGenre           *string `json:"book_genre,omitempty"  validate:"omitempty,max=255"`
}

// BookUpdateRequest: validasi sama dengan create; field opsional yang tidak
// dikirim dibiarkan apa adanya.
type BookUpdateRequest struct {
	BookTitle           string  `json:"book_title"            validate:"required,max=255"`
	BookAuthor          string  `json:"book_author"           validate:"required,max=255"`
	BookISBN            string  `json:"book_isbn"             validate:"required,max=255"`
	BookDescription     *string `json:"book_description,omitempty"`
	BookPublicationYear *int    `json:"book_publication_year,omitempty"`
	BookGenre           *string `json:"book_genre,omitempty"  validate:"omitempty,max=255"`
}

/* =========================================================
   NORMALIZER
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *BookCreateRequest) Normalize() {
	r.BookTitle = strings.TrimSpace(r.BookTitle)
	r.BookAuthor = strings.TrimSpace(r.BookAuthor)
	r.BookISBN = strings.TrimSpace(r.BookISBN)
	r.BookDescription = trimPtr(r.BookDescription)
	r.BookGenre = trimPtr(r.BookGenre)
}

func (r *BookUpdateRequest) Normalize() {
	r.BookTitle = strings.TrimSpace(r.BookTitle)
	r.BookAuthor = strings.TrimSpace(r.BookAuthor)
	r.BookISBN = strings.TrimSpace(r.BookISBN)
	r.BookDescription = trimPtr(r.BookDescription)
	r.BookGenre = trimPtr(r.BookGenre)
}

/* =========================================================
   VALIDATION (422, pesan per field)
   ========================================================= */

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "max":
		return "maksimal " + fe.Param() + " karakter"
	default:
		return "format tidak valid"
	}
}

func collectStructErrors(err error, out map[string][]string) {
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			// pakai nama kolom json (snake) dari field struct
			key := jsonFieldName(fe.Field())
			out[key] = append(out[key], validationMessage(fe))
		}
		return
	}
	out["input"] = append(out["input"], err.Error())
}

func jsonFieldName(structField string) string {
	switch structField {
	case "BookTitle":
		return "book_title"
	case "BookAuthor":
		return "book_author"
	case "BookISBN":
		return "book_isbn"
	case "BookPublicationYear":
		return "book_publication_year"
	case "BookGenre":
		return "book_genre"
	default:
		return strings.ToLower(structField)
	}
}

func validateYear(year *int, out map[string][]string) {
	if year == nil {
		return
	}
	if *year < MinPublicationYear || *year > MaxPublicationYear() {
		out["book_publication_year"] = append(out["book_publication_year"],
			"harus di antara "+strconv.Itoa(MinPublicationYear)+" dan "+strconv.Itoa(MaxPublicationYear()))
	}
}

// Validate mengembalikan map error per field, nil jika valid.
func (r *BookCreateRequest) Validate() map[string][]string {
	out := map[string][]string{}
	if err := validate.Struct(r); err != nil {
		collectStructErrors(err, out)
	}
	validateYear(r.BookPublicationYear, out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (r *BookUpdateRequest) Validate() map[string][]string {
	out := map[string][]string{}
	if err := validate.Struct(r); err != nil {
		collectStructErrors(err, out)
	}
	validateYear(r.BookPublicationYear, out)
	if len(out) == 0 {
		return nil
	}
	return out
}

/* =========================================================
   MODEL MAPPING
   ========================================================= */

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		BookTitle:           r.BookTitle,
		BookAuthor:          r.BookAuthor,
		BookISBN:            r.BookISBN,
		BookDescription:     r.BookDescription,
		BookPublicationYear: r.BookPublicationYear,
		BookGenre:           r.BookGenre,
		BookIsAvailable:     true,
	}
}

// ApplyToModel menimpa field katalog; field peminjaman tidak pernah disentuh
// lewat update (hanya borrow/return yang memutasinya).
func (r *BookUpdateRequest) ApplyToModel(b *model.BookModel) {
	b.BookTitle = r.BookTitle
	b.BookAuthor = r.BookAuthor
	b.BookISBN = r.BookISBN
	if r.BookDescription != nil {
		b.BookDescription = r.BookDescription
	}
	if r.BookPublicationYear != nil {
		b.BookPublicationYear = r.BookPublicationYear
	}
	if r.BookGenre != nil {
		b.BookGenre = r.BookGenre
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type BorrowerLite struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
}

type BookResponse struct {
	BookID              uuid.UUID     `json:"book_id"`
	BookTitle           string        `json:"book_title"`
	BookAuthor          string        `json:"book_author"`
	BookISBN            string        `json:"book_isbn"`
	BookDescription     *string       `json:"book_description,omitempty"`
	BookPublicationYear *int          `json:"book_publication_year,omitempty"`
	BookGenre           *string       `json:"book_genre,omitempty"`
	BookIsAvailable     bool          `json:"book_is_available"`
	BookBorrowedAt      *time.Time    `json:"book_borrowed_at,omitempty"`
	BookDueDate         *time.Time    `json:"book_due_date,omitempty"`
	Borrower            *BorrowerLite `json:"borrower,omitempty"`
	BookCreatedAt       time.Time     `json:"book_created_at"`
	BookUpdatedAt       time.Time     `json:"book_updated_at"`
}

func borrowerLite(u *userModel.UserModel) *BorrowerLite {
	if u == nil {
		return nil
	}
	return &BorrowerLite{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
	}
}

func FromModel(b *model.BookModel) BookResponse {
	return BookResponse{
		BookID:              b.BookID,
		BookTitle:           b.BookTitle,
		BookAuthor:          b.BookAuthor,
		BookISBN:            b.BookISBN,
		BookDescription:     b.BookDescription,
		BookPublicationYear: b.BookPublicationYear,
		BookGenre:           b.BookGenre,
		BookIsAvailable:     b.BookIsAvailable,
		BookBorrowedAt:      b.BookBorrowedAt,
		BookDueDate:         b.BookDueDate,
		Borrower:            borrowerLite(b.Borrower),
		BookCreatedAt:       b.BookCreatedAt,
		BookUpdatedAt:       b.BookUpdatedAt,
	}
}

func FromModels(books []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, FromModel(&books[i]))
	}
	return out
}

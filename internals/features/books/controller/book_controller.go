// file: internals/features/books/controller/book_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/books/dto"
	"pustakaku_backend/internals/features/books/service"
	helper "pustakaku_backend/internals/helpers"
)

type BookController struct {
	DB *gorm.DB
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db}
}

// GET /api/books
func (h *BookController) List(c *fiber.Ctx) error {
	filters := dto.ParseBooksListQuery(c)
	paging := helper.ResolvePaging(c, helper.CatalogPerPage)

	books, total, err := service.List(h.DB, filters, paging.Limit, paging.Offset)
	if err != nil {
		log.Printf("[BOOKS][LIST] query error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar buku")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(books)
	return helper.JsonList(c, "ok", dto.FromModels(books), &pagination)
}

// GET /api/books/:id
func (h *BookController) GetByID(c *fiber.Ctx) error {
	bookID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku tidak valid")
	}

	book, err := service.FindByID(h.DB, bookID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resp := dto.FromModel(book)
	return helper.JsonOK(c, "ok", resp)
}

// POST /api/books
func (h *BookController) Create(c *fiber.Ctx) error {
	var p dto.BookCreateRequest
	if err := c.BodyParser(&p); err != nil {
		// body rusak / tipe field salah = input tidak valid, bukan bad request biasa
		return helper.JsonValidationError(c, map[string][]string{"body": {"Payload tidak valid"}})
	}
	p.Normalize()

	fieldErrs := p.Validate()
	if fieldErrs == nil {
		taken, err := service.IsISBNTaken(h.DB, p.BookISBN, uuid.Nil)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek ISBN")
		}
		if taken {
			fieldErrs = map[string][]string{"book_isbn": {"sudah digunakan"}}
		}
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	ent := p.ToModel()
	if err := service.Create(h.DB, ent); err != nil {
		// unique constraint bisa tetap kena saat dua create balapan
		if service.IsDuplicateKeyError(err) {
			return helper.JsonValidationError(c, map[string][]string{"book_isbn": {"sudah digunakan"}})
		}
		log.Printf("[BOOKS][CREATE] insert error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan buku")
	}
	log.Printf("[BOOKS][CREATE] created book_id=%s isbn=%s", ent.BookID, ent.BookISBN)

	resp := dto.FromModel(ent)
	return helper.JsonCreated(c, "Book created successfully", resp)
}

// PUT/PATCH /api/books/:id
func (h *BookController) Update(c *fiber.Ctx) error {
	bookID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku tidak valid")
	}

	book, err := service.FindByID(h.DB, bookID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.BookUpdateRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {"Payload tidak valid"}})
	}
	p.Normalize()

	fieldErrs := p.Validate()
	if fieldErrs == nil {
		// unik ISBN, kecuali milik record ini sendiri
		taken, err := service.IsISBNTaken(h.DB, p.BookISBN, bookID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek ISBN")
		}
		if taken {
			fieldErrs = map[string][]string{"book_isbn": {"sudah digunakan"}}
		}
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	p.ApplyToModel(book)
	if err := service.Update(h.DB, book); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan buku")
	}

	resp := dto.FromModel(book)
	return helper.JsonUpdated(c, "Book updated successfully", resp)
}

// DELETE /api/books/:id
func (h *BookController) Delete(c *fiber.Ctx) error {
	bookID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku tidak valid")
	}

	if err := service.Delete(h.DB, bookID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Book deleted successfully", nil)
}

// POST /api/books/:id/borrow
func (h *BookController) Borrow(c *fiber.Ctx) error {
	bookID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku tidak valid")
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	book, err := service.Borrow(h.DB, bookID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	log.Printf("[BOOKS][BORROW] book_id=%s user_id=%s due=%v", bookID, userID, book.BookDueDate)

	resp := dto.FromModel(book)
	return helper.JsonOK(c, "Book borrowed successfully", resp)
}

// POST /api/books/:id/return
func (h *BookController) Return(c *fiber.Ctx) error {
	bookID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku tidak valid")
	}
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	book, err := service.Return(h.DB, bookID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	log.Printf("[BOOKS][RETURN] book_id=%s user_id=%s", bookID, userID)

	resp := dto.FromModel(book)
	return helper.JsonOK(c, "Book returned successfully", resp)
}

// GET /api/my-books
func (h *BookController) MyBooks(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	books, err := service.ListBorrowedBy(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku pinjaman")
	}
	return helper.JsonOK(c, "ok", dto.FromModels(books))
}

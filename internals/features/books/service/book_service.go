// file: internals/features/books/service/book_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/books/dto"
	model "pustakaku_backend/internals/features/books/model"
)

// kolom katalog yang boleh ditimpa lewat update; kolom peminjaman tidak ikut.
var catalogColumns = []string{
	"book_title",
	"book_author",
	"book_isbn",
	"book_description",
	"book_publication_year",
	"book_genre",
}

/* ==========================
   QUERY
========================== */

func applyListFilters(q *gorm.DB, f dto.BooksListQuery) *gorm.DB {
	if f.Search != "" {
		p := "%" + f.Search + "%"
		q = q.Where(
			"book_title ILIKE ? OR book_author ILIKE ? OR book_isbn ILIKE ? OR book_genre ILIKE ?",
			p, p, p, p,
		)
	}
	if f.Available != nil {
		q = q.Where("book_is_available = ?", *f.Available)
	}
	if f.Genre != "" {
		q = q.Where("book_genre = ?", f.Genre)
	}
	return q
}

// List mengembalikan satu halaman buku + total untuk pagination.
func List(db *gorm.DB, f dto.BooksListQuery, limit, offset int) ([]model.BookModel, int64, error) {
	var total int64
	if err := applyListFilters(db.Model(&model.BookModel{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []model.BookModel
	err := applyListFilters(db.Model(&model.BookModel{}), f).
		Preload("Borrower").
		Order("book_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&books).Error
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func FindByID(db *gorm.DB, bookID uuid.UUID) (*model.BookModel, error) {
	var b model.BookModel
	if err := db.Preload("Borrower").First(&b, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Book not found")
		}
		return nil, err
	}
	return &b, nil
}

// ListBorrowedBy: semua buku yang sedang dipinjam user ini (tanpa pagination).
func ListBorrowedBy(db *gorm.DB, userID uuid.UUID) ([]model.BookModel, error) {
	var books []model.BookModel
	err := db.
		Where("book_borrower_user_id = ? AND book_is_available = FALSE", userID).
		Order("book_due_date ASC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// IsISBNTaken: cek unik ISBN; excludeID = uuid.Nil saat create.
func IsISBNTaken(db *gorm.DB, isbn string, excludeID uuid.UUID) (bool, error) {
	q := db.Model(&model.BookModel{}).Where("book_isbn = ?", isbn)
	if excludeID != uuid.Nil {
		q = q.Where("book_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

/* ==========================
   MUTATION (katalog)
========================== */

// IsDuplicateKeyError: deteksi pelanggaran unique constraint dari pesan error
// driver (pgx tidak diimport langsung, jadi cek string seperti di auth).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

func Create(db *gorm.DB, b *model.BookModel) error {
	return db.Create(b).Error
}

// Update menimpa kolom katalog saja. b harus record hasil fetch yang sudah
// di-apply perubahan; kolom peminjaman tidak pernah ikut tertulis.
func Update(db *gorm.DB, b *model.BookModel) error {
	return db.Model(&model.BookModel{}).
		Where("book_id = ?", b.BookID).
		Select(catalogColumns).
		Updates(b).Error
}

// Delete menghapus buku; ditolak selama buku masih dipinjam.
func Delete(db *gorm.DB, bookID uuid.UUID) error {
	var b model.BookModel
	if err := db.First(&b, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Book not found")
		}
		return err
	}
	if b.IsBorrowed() {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot delete a borrowed book")
	}
	return db.Delete(&model.BookModel{}, "book_id = ?", bookID).Error
}

/* ==========================
   LENDING (borrow / return)
========================== */

// Borrow: transisi Available → Borrowed secara atomik.
// Guard di WHERE menutup race dua borrow bersamaan: hanya satu UPDATE yang
// kena baris, yang kalah dapat RowsAffected 0.
func Borrow(db *gorm.DB, bookID, userID uuid.UUID) (*model.BookModel, error) {
	var b model.BookModel
	if err := db.First(&b, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Book not found")
		}
		return nil, err
	}

	if err := b.MarkBorrowed(userID, time.Now().UTC()); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Book is not available for borrowing")
	}

	res := db.Model(&model.BookModel{}).
		Where("book_id = ? AND book_is_available = TRUE", bookID).
		Updates(map[string]interface{}{
			"book_is_available":     false,
			"book_borrower_user_id": b.BookBorrowerUserID,
			"book_borrowed_at":      b.BookBorrowedAt,
			"book_due_date":         b.BookDueDate,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// kalah race: buku keburu dipinjam orang lain
		return nil, fiber.NewError(fiber.StatusBadRequest, "Book is not available for borrowing")
	}

	return FindByID(db, bookID)
}

// Return: transisi Borrowed → Available, hanya oleh peminjam saat ini.
func Return(db *gorm.DB, bookID, userID uuid.UUID) (*model.BookModel, error) {
	var b model.BookModel
	if err := db.First(&b, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Book not found")
		}
		return nil, err
	}

	if err := b.MarkReturned(userID); err != nil {
		if errors.Is(err, model.ErrNotBorrower) {
			return nil, fiber.NewError(fiber.StatusForbidden, "You can only return books you have borrowed")
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, "Book is not currently borrowed")
	}

	res := db.Model(&model.BookModel{}).
		Where("book_id = ? AND book_is_available = FALSE AND book_borrower_user_id = ?", bookID, userID).
		Updates(map[string]interface{}{
			"book_is_available":     true,
			"book_borrower_user_id": nil,
			"book_borrowed_at":      nil,
			"book_due_date":         nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Book is not currently borrowed")
	}

	return &b, nil
}

// file: internals/features/books/model/book_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	userModel "pustakaku_backend/internals/features/users/user/model"
)

// BorrowPeriod: lama peminjaman tetap 14 hari dari waktu pinjam.
const BorrowPeriod = 14 * 24 * time.Hour

var (
	ErrBookNotAvailable = errors.New("book is not available for borrowing")
	ErrBookNotBorrowed  = errors.New("book is not currently borrowed")
	ErrNotBorrower      = errors.New("only the current borrower may return this book")
)

// BookModel merepresentasikan satu eksemplar buku di tabel books.
// Status peminjaman: book_is_available == false ⇔ borrower + borrowed_at +
// due_date semuanya terisi. Transisi hanya lewat MarkBorrowed / MarkReturned.
type BookModel struct {
	BookID              uuid.UUID  `gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_id"`
	BookTitle           string     `gorm:"column:book_title;size:255;not null" json:"book_title"`
	BookAuthor          string     `gorm:"column:book_author;size:255;not null" json:"book_author"`
	BookISBN            string     `gorm:"column:book_isbn;size:255;not null;uniqueIndex:uq_books_isbn" json:"book_isbn"`
	BookDescription     *string    `gorm:"column:book_description;type:text" json:"book_description,omitempty"`
	BookPublicationYear *int       `gorm:"column:book_publication_year" json:"book_publication_year,omitempty"`
	BookGenre           *string    `gorm:"column:book_genre;size:255" json:"book_genre,omitempty"`
	BookIsAvailable     bool       `gorm:"column:book_is_available;not null;default:true" json:"book_is_available"`
	BookBorrowerUserID  *uuid.UUID `gorm:"column:book_borrower_user_id;type:uuid" json:"book_borrower_user_id,omitempty"`
	BookBorrowedAt      *time.Time `gorm:"column:book_borrowed_at" json:"book_borrowed_at,omitempty"`
	BookDueDate         *time.Time `gorm:"column:book_due_date" json:"book_due_date,omitempty"`
	BookCreatedAt       time.Time  `gorm:"column:book_created_at;autoCreateTime" json:"book_created_at"`
	BookUpdatedAt       time.Time  `gorm:"column:book_updated_at;autoUpdateTime" json:"book_updated_at"`

	// Borrower: weak reference ke users; user dihapus → kolom di-NULL-kan.
	Borrower *userModel.UserModel `gorm:"foreignKey:BookBorrowerUserID;references:ID;constraint:OnDelete:SET NULL" json:"borrower,omitempty"`
}

func (BookModel) TableName() string {
	return "books"
}

// IsBorrowed: true jika buku sedang dipinjam.
func (b *BookModel) IsBorrowed() bool {
	return !b.BookIsAvailable
}

// MarkBorrowed: transisi Available → Borrowed.
// Mengisi borrower + borrowed_at + due_date sekaligus (due = now + 14 hari).
func (b *BookModel) MarkBorrowed(userID uuid.UUID, now time.Time) error {
	if !b.BookIsAvailable {
		return ErrBookNotAvailable
	}
	due := now.Add(BorrowPeriod)
	b.BookIsAvailable = false
	b.BookBorrowerUserID = &userID
	b.BookBorrowedAt = &now
	b.BookDueDate = &due
	return nil
}

// MarkReturned: transisi Borrowed → Available.
// Hanya peminjam saat ini yang boleh mengembalikan.
func (b *BookModel) MarkReturned(userID uuid.UUID) error {
	if b.BookIsAvailable {
		return ErrBookNotBorrowed
	}
	if b.BookBorrowerUserID == nil || *b.BookBorrowerUserID != userID {
		return ErrNotBorrower
	}
	b.BookIsAvailable = true
	b.BookBorrowerUserID = nil
	b.BookBorrowedAt = nil
	b.BookDueDate = nil
	b.Borrower = nil
	return nil
}

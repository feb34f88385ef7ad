package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pustakaku_backend/internals/features/books/model"
)

func availableBook() *model.BookModel {
	return &model.BookModel{
		BookID:          uuid.New(),
		BookTitle:       "The Great Gatsby",
		BookAuthor:      "F. Scott Fitzgerald",
		BookISBN:        "9780743273565",
		BookIsAvailable: true,
	}
}

// lendingStateConsistent: book_is_available == false ⇔ ketiga field pinjaman terisi.
func lendingStateConsistent(b *model.BookModel) bool {
	borrowed := b.BookBorrowerUserID != nil && b.BookBorrowedAt != nil && b.BookDueDate != nil
	free := b.BookBorrowerUserID == nil && b.BookBorrowedAt == nil && b.BookDueDate == nil
	if b.BookIsAvailable {
		return free
	}
	return borrowed
}

func Test_MarkBorrowed_SetsAllLendingFields(t *testing.T) {
	b := availableBook()
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	err := b.MarkBorrowed(userID, now)
	require.NoError(t, err)

	assert.False(t, b.BookIsAvailable)
	require.NotNil(t, b.BookBorrowerUserID)
	assert.Equal(t, userID, *b.BookBorrowerUserID)
	require.NotNil(t, b.BookBorrowedAt)
	assert.Equal(t, now, *b.BookBorrowedAt)
	require.NotNil(t, b.BookDueDate)
	assert.Equal(t, now.Add(14*24*time.Hour), *b.BookDueDate)
	assert.True(t, lendingStateConsistent(b))
}

func Test_MarkBorrowed_AlreadyBorrowed_FailsAndLeavesRecordUnchanged(t *testing.T) {
	b := availableBook()
	firstUser := uuid.New()
	now := time.Now().UTC()
	require.NoError(t, b.MarkBorrowed(firstUser, now))

	before := *b
	err := b.MarkBorrowed(uuid.New(), now.Add(time.Hour))

	assert.ErrorIs(t, err, model.ErrBookNotAvailable)
	assert.Equal(t, before, *b)
	assert.True(t, lendingStateConsistent(b))
}

func Test_MarkReturned_ByBorrower_ClearsLendingFields(t *testing.T) {
	b := availableBook()
	userID := uuid.New()
	require.NoError(t, b.MarkBorrowed(userID, time.Now().UTC()))

	err := b.MarkReturned(userID)
	require.NoError(t, err)

	assert.True(t, b.BookIsAvailable)
	assert.Nil(t, b.BookBorrowerUserID)
	assert.Nil(t, b.BookBorrowedAt)
	assert.Nil(t, b.BookDueDate)
	assert.True(t, lendingStateConsistent(b))
}

func Test_MarkReturned_ByOtherUser_ForbiddenAndLeavesRecordUnchanged(t *testing.T) {
	b := availableBook()
	borrower := uuid.New()
	require.NoError(t, b.MarkBorrowed(borrower, time.Now().UTC()))

	before := *b
	err := b.MarkReturned(uuid.New())

	assert.ErrorIs(t, err, model.ErrNotBorrower)
	assert.Equal(t, before, *b)
	assert.True(t, lendingStateConsistent(b))
}

func Test_MarkReturned_NotBorrowed_Fails(t *testing.T) {
	b := availableBook()

	err := b.MarkReturned(uuid.New())

	assert.ErrorIs(t, err, model.ErrBookNotBorrowed)
	assert.True(t, b.BookIsAvailable)
	assert.True(t, lendingStateConsistent(b))
}

func Test_IsBorrowed(t *testing.T) {
	b := availableBook()
	assert.False(t, b.IsBorrowed())

	require.NoError(t, b.MarkBorrowed(uuid.New(), time.Now().UTC()))
	assert.True(t, b.IsBorrowed())
}

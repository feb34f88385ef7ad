package seeds

import (
	"gorm.io/gorm"

	books "pustakaku_backend/internals/seeds/books"
	users "pustakaku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Katalog
	books.SeedBooksFromJSON(db, "internals/seeds/books/data_books.json")
}

package books

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"pustakaku_backend/internals/features/books/model"
)

type BookSeed struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            string  `json:"isbn"`
	Description     *string `json:"description"`
	PublicationYear *int    `json:"publication_year"`
	Genre           *string `json:"genre"`
}

func SeedBooksFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file buku:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []BookSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.BookModel
		if err := db.Where("book_isbn = ?", data.ISBN).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Buku dengan ISBN '%s' sudah ada, dilewati.", data.ISBN)
			continue
		}

		newBook := model.BookModel{
			BookTitle:           data.Title,
			BookAuthor:          data.Author,
			BookISBN:            data.ISBN,
			BookDescription:     data.Description,
			BookPublicationYear: data.PublicationYear,
			BookGenre:           data.Genre,
			BookIsAvailable:     true,
		}
		if err := db.Create(&newBook).Error; err != nil {
			log.Printf("❌ Gagal membuat buku '%s': %v", data.Title, err)
			continue
		}
		log.Printf("✅ Buku '%s' berhasil dibuat.", data.Title)
	}
}

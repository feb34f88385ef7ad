package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pustakaku_backend/internals/features/books/controller"
	authMiddleware "pustakaku_backend/internals/middlewares/auth"
)

func BookRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewBookController(db)

	api := app.Group("/api")

	// katalog publik
	api.Get("/books", ctrl.List)

	// selain listing, semua operasi butuh login
	protected := app.Group("/api", authMiddleware.AuthMiddleware(db))
	protected.Get("/books/:id", ctrl.GetByID)
	protected.Post("/books", ctrl.Create)
	protected.Put("/books/:id", ctrl.Update)
	protected.Patch("/books/:id", ctrl.Update)
	protected.Delete("/books/:id", ctrl.Delete)
	protected.Post("/books/:id/borrow", ctrl.Borrow)
	protected.Post("/books/:id/return", ctrl.Return)
	protected.Get("/my-books", ctrl.MyBooks)
}

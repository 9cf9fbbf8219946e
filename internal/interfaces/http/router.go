package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/application/session"
	"github.com/jhoicas/Inventario-local/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC  *session.SessionUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *inventory.MovementUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stores (sesión de almacenes)
	stores := api.Group("/stores")
	sessionHandler := NewSessionHandler(deps.SessionUC)
	stores.Get("/", sessionHandler.List)
	stores.Post("/", sessionHandler.Create)
	stores.Post("/switch", sessionHandler.Switch)
	stores.Post("/disconnect", sessionHandler.Disconnect)
	stores.Get("/current", sessionHandler.Current)
	stores.Get("/status", sessionHandler.Status)
	stores.Delete("/:name", sessionHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/out-of-stock", productHandler.OutOfStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movements (libro de movimientos)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Get("/stats", movementHandler.Stats)
	movements.Delete("/:id", movementHandler.Delete)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/safestock/internal/application/ledger"
	"github.com/tu-usuario/safestock/internal/application/usecase"
	"github.com/tu-usuario/safestock/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	ReplenishmentUC *usecase.ReplenishmentUseCase
	DashboardUC     *usecase.DashboardUseCase
	LedgerUC        *ledger.LedgerUseCase
	MovementRepo    repository.MovementRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LedgerUC, deps.ReplenishmentUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/add", productHandler.AddStock)
	products.Get("/:id/replenishment-priority", productHandler.ReplenishmentPriority)

	// Movements (ledger)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.MovementRepo)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Put("/:id", movementHandler.Correct)
	movements.Delete("/:id", movementHandler.Remove)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Get)
}

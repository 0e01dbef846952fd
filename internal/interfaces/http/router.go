package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *usecase.ItemUseCase
	UserUC        *usecase.UserUseCase
	TransactionUC *usecase.TransactionUseCase
	Log           *logger.Logger
	StoreTimeout  time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	// Items
	items := app.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.Log, deps.StoreTimeout)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.Read)
	items.Put("/:item_sku", itemHandler.Update)
	items.Delete("/:item_sku", itemHandler.Delete)

	// Users
	users := app.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log, deps.StoreTimeout)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.Read)
	users.Put("/:user_id", userHandler.Update)
	users.Delete("/:user_id", userHandler.Delete)

	// Transactions: compra, actualización de compra y devolución
	transactions := app.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.Log, deps.StoreTimeout)
	transactions.Post("/purchase", transactionHandler.Purchase)
	transactions.Put("/purchase/:item_sku/:warehouse_id/:customer_id", transactionHandler.UpdatePurchase)
	transactions.Post("/return/:item_sku/:warehouse_id/:customer_id", transactionHandler.Return)
}

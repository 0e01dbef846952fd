package http

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/application/validation"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

var transactionMessages = errorMessages{notFound: "Transaction not found"}

// TransactionHandler maneja las peticiones HTTP de compras y devoluciones.
type TransactionHandler struct {
	uc      *usecase.TransactionUseCase
	log     *logger.Logger
	timeout time.Duration
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase, log *logger.Logger, timeout time.Duration) *TransactionHandler {
	return &TransactionHandler{uc: uc, log: log, timeout: timeout}
}

func transactionKey(c *fiber.Ctx) entity.TransactionKey {
	return entity.TransactionKey{
		ItemSKU:     c.Params("item_sku"),
		WarehouseID: c.Params("warehouse_id"),
		CustomerID:  c.Params("customer_id"),
	}
}

// Purchase godoc
// @Summary      Registrar compra
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]any  true  "Campos de la compra"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /transactions/purchase [post]
func (h *TransactionHandler) Purchase(c *fiber.Ctx) error {
	data, err := decodeBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr := validation.Purchase(data); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Purchase(ctx, data); err != nil {
		return respondError(c, h.log, "purchase", err, transactionMessages)
	}
	return respondMessage(c, fiber.StatusCreated, "Transaction created successfully")
}

// UpdatePurchase godoc
// @Summary      Actualizar compra (parcial, clave compuesta inmutable)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        item_sku      path  string          true  "SKU del artículo"
// @Param        warehouse_id  path  string          true  "Id de bodega"
// @Param        customer_id   path  string          true  "Id de cliente"
// @Param        body          body  map[string]any  true  "Subconjunto de campos"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /transactions/purchase/{item_sku}/{warehouse_id}/{customer_id} [put]
func (h *TransactionHandler) UpdatePurchase(c *fiber.Ctx) error {
	data, err := decodeBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr := validation.UpdatePurchase(data); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.UpdatePurchase(ctx, transactionKey(c), data); err != nil {
		return respondError(c, h.log, "update purchase", err, transactionMessages)
	}
	return respondMessage(c, fiber.StatusOK, "Transaction updated successfully")
}

// Return godoc
// @Summary      Procesar devolución
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        item_sku      path  string          true  "SKU del artículo"
// @Param        warehouse_id  path  string          true  "Id de bodega"
// @Param        customer_id   path  string          true  "Id de cliente"
// @Param        body          body  map[string]any  true  "return_quantity"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /transactions/return/{item_sku}/{warehouse_id}/{customer_id} [post]
func (h *TransactionHandler) Return(c *fiber.Ctx) error {
	data, err := decodeBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr := validation.Return(data); verr != nil {
		return respondValidation(c, verr)
	}
	// El validador garantiza entero positivo.
	quantity, _ := data["return_quantity"].(json.Number).Int64()

	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Return(ctx, transactionKey(c), quantity); err != nil {
		return respondError(c, h.log, "return", err, transactionMessages)
	}
	return respondMessage(c, fiber.StatusOK, "Transaction return processed successfully")
}

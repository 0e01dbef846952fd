package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/application/validation"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

var itemMessages = errorMessages{notFound: "Item not found", conflict: "Item already exists"}

// ItemHandler maneja las peticiones HTTP para artículos.
type ItemHandler struct {
	uc      *usecase.ItemUseCase
	log     *logger.Logger
	timeout time.Duration
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, log *logger.Logger, timeout time.Duration) *ItemHandler {
	return &ItemHandler{uc: uc, log: log, timeout: timeout}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]any  true  "Los 16 campos del artículo"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.MessageResponse
// @Router       /items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	data, err := decodeBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr := validation.CreateItem(data); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Create(ctx, data); err != nil {
		return respondError(c, h.log, "create item", err, itemMessages)
	}
	return respondMessage(c, fiber.StatusCreated, "Item created successfully")
}

// Read godoc
// @Summary      Buscar artículos
// @Tags         items
// @Produce      json
// @Param        item_name   query  string  false  "Subcadena del nombre"
// @Param        item_group  query  string  false  "Subcadena del grupo"
// @Param        brand       query  string  false  "Subcadena de la marca"
// @Param        item_sku    query  string  false  "Subcadena del SKU"
// @Success      200  {array}   dto.ItemResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /items [get]
func (h *ItemHandler) Read(c *fiber.Ctx) error {
	params := c.Queries()
	if verr := validation.ReadItemParams(params); verr != nil {
		return respondValidation(c, verr)
	}
	filter := entity.ItemFilter{
		Name:  params["item_name"],
		Group: params["item_group"],
		Brand: params["brand"],
		SKU:   params["item_sku"],
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	items, err := h.uc.Search(ctx, filter)
	if err != nil {
		return respondError(c, h.log, "search items", err, itemMessages)
	}
	if len(items) == 0 {
		return respondMessage(c, fiber.StatusNotFound, "No items found")
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Actualizar artículo (parcial)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item_sku  path  string          true  "SKU del artículo"
// @Param        body      body  map[string]any  true  "Subconjunto de campos"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /items/{item_sku} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	sku := c.Params("item_sku")
	data, err := decodeBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr := validation.UpdateItem(data); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Update(ctx, sku, data); err != nil {
		return respondError(c, h.log, "update item", err, itemMessages)
	}
	return respondMessage(c, fiber.StatusOK, "Item updated successfully")
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         items
// @Produce      json
// @Param        item_sku  path  string  true  "SKU del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /items/{item_sku} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	sku := c.Params("item_sku")
	if verr := validation.DeleteItem(sku); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Delete(ctx, sku); err != nil {
		return respondError(c, h.log, "delete item", err, itemMessages)
	}
	return respondMessage(c, fiber.StatusOK, "Item deleted successfully")
}

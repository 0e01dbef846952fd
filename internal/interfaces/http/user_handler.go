package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/application/validation"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

var userMessages = errorMessages{notFound: "User not found", conflict: "User already exists"}

// UserHandler maneja las peticiones HTTP para usuarios.
type UserHandler struct {
	uc      *usecase.UserUseCase
	log     *logger.Logger
	timeout time.Duration
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger, timeout time.Duration) *UserHandler {
	return &UserHandler{uc: uc, log: log, timeout: timeout}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]any  true  "user_id, user_name, pass_hash y opcionalmente user_role"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.MessageResponse
// @Router       /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	data, err := decodeBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr := validation.CreateUser(data); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Create(ctx, data); err != nil {
		return respondError(c, h.log, "create user", err, userMessages)
	}
	return respondMessage(c, fiber.StatusCreated, "User created successfully")
}

// Read godoc
// @Summary      Buscar usuarios
// @Tags         users
// @Produce      json
// @Param        user_name  query  string  false  "Subcadena del nombre"
// @Param        user_role  query  string  false  "Rol exacto (admin|employee)"
// @Param        user_id    query  string  false  "Id exacto"
// @Success      200  {array}   dto.UserResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /users [get]
func (h *UserHandler) Read(c *fiber.Ctx) error {
	params := c.Queries()
	if verr := validation.ReadUserParams(params); verr != nil {
		return respondValidation(c, verr)
	}
	filter := entity.UserFilter{
		Name: params["user_name"],
		Role: params["user_role"],
		ID:   params["user_id"],
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	users, err := h.uc.Search(ctx, filter)
	if err != nil {
		return respondError(c, h.log, "search users", err, userMessages)
	}
	if len(users) == 0 {
		return respondMessage(c, fiber.StatusNotFound, "No users found")
	}
	return c.JSON(users)
}

// Update godoc
// @Summary      Actualizar usuario (parcial, user_id inmutable)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id  path  string          true  "Id del usuario"
// @Param        body     body  map[string]any  true  "Subconjunto de campos"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /users/{user_id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	data, err := decodeBody(c)
	if err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr := validation.UpdateUser(data); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Update(ctx, userID, data); err != nil {
		return respondError(c, h.log, "update user", err, userMessages)
	}
	return respondMessage(c, fiber.StatusOK, "User updated successfully")
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Param        user_id  path  string  true  "Id del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /users/{user_id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if verr := validation.DeleteUser(userID); verr != nil {
		return respondValidation(c, verr)
	}
	ctx, cancel := opCtx(c, h.timeout)
	defer cancel()
	if err := h.uc.Delete(ctx, userID); err != nil {
		return respondError(c, h.log, "delete user", err, userMessages)
	}
	return respondMessage(c, fiber.StatusOK, "User deleted successfully")
}

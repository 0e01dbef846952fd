package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/validation"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// decodeBody decodifica el cuerpo JSON a map conservando los números como
// json.Number, que es lo que los validadores esperan para distinguir enteros.
func decodeBody(c *fiber.Ctx) (map[string]any, error) {
	var data map[string]any
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// opCtx acota toda llamada al almacén con el timeout configurado.
func opCtx(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeout)
}

func respondMessage(c *fiber.Ctx, status int, message string, fields ...string) error {
	return c.Status(status).JSON(dto.MessageResponse{Message: message, Fields: fields})
}

func respondValidation(c *fiber.Ctx, verr *validation.Error) error {
	return respondMessage(c, fiber.StatusBadRequest, verr.Message, verr.Fields...)
}

// errorMessages textos por recurso para los fallos localizables.
type errorMessages struct {
	notFound string
	conflict string
}

// respondError traduce errores de dominio a códigos HTTP. Cualquier falla
// inesperada del almacén se registra con contexto y sale como 500 opaco:
// el detalle interno (query, driver) nunca llega al caller.
func respondError(c *fiber.Ctx, log *logger.Logger, op string, err error, msgs errorMessages) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respondMessage(c, fiber.StatusNotFound, msgs.notFound)
	case errors.Is(err, domain.ErrDuplicate):
		return respondMessage(c, fiber.StatusConflict, msgs.conflict)
	case errors.Is(err, domain.ErrExceedsQuantity):
		return respondMessage(c, fiber.StatusBadRequest, "Return quantity cannot exceed transaction quantity")
	case errors.Is(err, domain.ErrInvalidInput):
		return respondMessage(c, fiber.StatusBadRequest, "Invalid fields provided")
	default:
		log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("fallo del almacén")
		return respondMessage(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}

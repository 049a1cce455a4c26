package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Leganyst/labor-platform/internal/apperr"
)

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// respond отправляет стандартный конверт успеха.
func respond(c *fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError переводит ошибку доменного сервиса в HTTP-ответ:
// ValidationError -> 400, NotFound -> 404, Conflict -> 409, остальное
// (включая StorageError) -> 500 без деталей бэкенда.
func respondError(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Message: ve.Reason,
			Field:   ve.Field,
		})
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{
			Message: "not found",
		})
	case errors.Is(err, apperr.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{
			Message: "conflict",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Message: "internal error",
		})
	}
}

package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/domain"
)

// Códigos de error del envelope.
const (
	CodeValidation         = "VALIDATION"
	CodeInvalidBody        = "INVALID_BODY"
	CodeNotFound           = "NOT_FOUND"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeDuplicate          = "DUPLICATE"
	CodeEmailNotRegistered = "EMAIL_NOT_REGISTERED"
	CodeWrongPassword      = "INCORRECT_PASSWORD"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeStorage            = "STORAGE_UNAVAILABLE"
	CodeImageHostDisabled  = "IMAGE_HOST_DISABLED"
	CodeInternal           = "INTERNAL"
)

const localError = "handler_error"

// parseID lee el prefijo entero de :id: espacios iniciales, signo opcional y dígitos ("12abc" -> 12).
// Sin dígitos al inicio el id nunca coincide con un registro.
func parseID(c *fiber.Ctx) (int64, bool) {
	raw := strings.TrimLeft(c.Params("id"), " \t\n\r")
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	id, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail(CodeNotFound, message))
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeInvalidBody, "Invalid request body"))
}

// writeError traduce errores de dominio a status + envelope.
// Los errores no previstos devuelven 500 con fallback como mensaje y el error crudo en "error".
func writeError(c *fiber.Ctx, err error, fallback string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeValidation, ve.Message))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeValidation, err.Error()))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeEmailExists, "Email already registered"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(CodeDuplicate, "Record already exists"))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(CodeEmailNotRegistered, "Email not registered"))
	case errors.Is(err, domain.ErrInvalidPassword):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(CodeWrongPassword, "Incorrect password"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(CodeUnauthorized, "Unauthorized"))
	}

	c.Locals(localError, err)
	env := dto.Fail(CodeInternal, fallback)
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		env.Code = CodeStorage
	case errors.Is(err, domain.ErrImageHostDisabled):
		env.Code = CodeImageHostDisabled
		env.Message = "Image host not configured"
	}
	env.Error = err.Error()
	return c.Status(fiber.StatusInternalServerError).JSON(env)
}

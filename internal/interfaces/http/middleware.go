package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

// ErrorHandler renderiza el envelope para errores que ningún handler atrapó.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return c.Status(fe.Code).JSON(dto.Fail(CodeNotFound, "Endpoint not found"))
			case fiber.StatusRequestEntityTooLarge:
				return c.Status(fe.Code).JSON(dto.Fail(CodeValidation, "Request body too large"))
			}
			if fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(dto.Fail(CodeValidation, fe.Message))
			}
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		env := dto.Fail(CodeInternal, "Internal server error")
		env.Error = err.Error()
		return c.Status(fiber.StatusInternalServerError).JSON(env)
	}
}

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		if herr, ok := c.Locals(localError).(error); ok {
			ev = ev.Err(herr)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("http request")
		return nil
	}
}

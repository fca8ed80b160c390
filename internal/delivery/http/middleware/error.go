package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// AppError carries the status and the exact wire body for a failed request.
// Body is the JSON the client sees (a field→message map for validation
// failures, {"noprofile": ...} for missing profiles, and so on).
type AppError struct {
	StatusCode int
	Body       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "request failed"
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, body any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Body: body, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", zap.Any("panic", r))
				err = c.Status(fiber.StatusInternalServerError).
					JSON(fiber.Map{"error": "internal server error"})
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, body := normalizeError(err)
		if status >= 500 {
			m.logger.Error("request failed",
				zap.String("path", c.OriginalURL()),
				zap.Error(err),
			)
		}
		return c.Status(status).JSON(body)
	}
}

func normalizeError(err error) (int, any) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, fiber.Map{"error": "internal server error"}
		}
		body := appErr.Body
		if body == nil {
			body = fiber.Map{"error": "error"}
		}
		return status, body
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, fiber.Map{"error": "internal server error"}
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = "error"
		}
		return status, fiber.Map{"error": msg}
	}

	return fiber.StatusInternalServerError, fiber.Map{"error": "internal server error"}
}

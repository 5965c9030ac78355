package serverutils

import (
	"errors"

	"notes-be/internal/pkg/apperrors"
	"notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service errors into responses.
// Upstream causes are logged for operators and never echoed to clients.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperrors.As(err); ok {
			switch appErr.Kind {
			case apperrors.KindUnauthorized:
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
			case apperrors.KindValidation:
				return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, appErr.Message))
			case apperrors.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, appErr.Message))
			case apperrors.KindNotConfigured:
				return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(fiber.StatusServiceUnavailable, appErr.Message))
			case apperrors.KindUpstream:
				log.Error("http", "upstream failure", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Cause,
				})
				return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, appErr.Message))
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
}

package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	apperrors "jobboard-backend/lib/utils/app-errors"
	apimodels "jobboard-backend/models/api"
)

// WithBodyLimit отсекает запрос по заголовку Content-Length до чтения тела
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength == "" || contentLength == "0" {
			return c.Next()
		}
		size, err := strconv.ParseInt(contentLength, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(apimodels.NewError(apperrors.CodeValidation, "invalid Content-Length header"))
		}
		if size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError(apperrors.CodeValidation, fmt.Sprintf("request body too large, maximum allowed: %d bytes", limit)))
		}
		return c.Next()
	}
}

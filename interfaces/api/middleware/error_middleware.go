package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dailytasks/pkg/logger"
	"dailytasks/pkg/utils"
)

// ErrorHandler is the app-level fallback for errors that escape the handlers,
// mapping fiber errors onto the response envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusMethodNotAllowed:
				errCode = utils.ErrCodeBadRequest
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}

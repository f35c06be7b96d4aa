package httpapi

import (
	"errors"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // bad_request, not_converged, not_found, internal_error
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", msg)
}

func errUnprocessable(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusUnprocessableEntity, "not_converged", msg)
}

func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusInternalServerError, "internal_error", msg)
}

// errFromDomain maps a use case error to a response by its kind.
func errFromDomain(c *fiber.Ctx, err error) error {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput, domain.KindInvalidConfig:
		return errBadRequest(c, err.Error())
	case domain.KindNotFound:
		return newError(c, fiber.StatusNotFound, "not_found", err.Error())
	default:
		return errInternal(c, "internal error")
	}
}

// ErrorHandler renders errors that escape handlers, e.g. unmatched routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "internal_error"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "not_found"
		case fiber.StatusMethodNotAllowed:
			code = "method_not_allowed"
		case fiber.StatusRequestEntityTooLarge:
			code = "payload_too_large"
		default:
			if fe.Code < 500 {
				code = "bad_request"
			}
		}
		return newError(c, fe.Code, code, fe.Message)
	}
	return errInternal(c, "internal error")
}

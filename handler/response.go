package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vecino-activo/apperr"
	"vecino-activo/dto/res"
	"vecino-activo/security"
)

// writeError maps the application error taxonomy onto HTTP statuses.
// Duplicate email and duplicate attendance answer 400, not 409, matching the
// documented API contract. Anything unrecognized surfaces as a 500 with the
// underlying message.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, apperr.ErrAlreadyExists),
		errors.Is(err, apperr.ErrEventFull):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidCredential):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrInvalidToken):
		status = fiber.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrNotRegistered):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(res.ErrorResponse{Error: err.Error()})
}

// claimsFrom returns the identity the auth middleware stored on the request.
func claimsFrom(c *fiber.Ctx) (*security.Claims, bool) {
	claims, ok := c.Locals("claims").(*security.Claims)
	return claims, ok
}

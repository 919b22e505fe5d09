package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

// RequireAdmin permits the operation only when the resolved user carries the
// admin flag. Pure function of the authenticated identity, no lookups.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !user.IsAdmin {
			return apperrors.NewForbidden("admin required")
		}
		return c.Next()
	}
}

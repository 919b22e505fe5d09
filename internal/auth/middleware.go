package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gas-delivery/internal/domain"
	"github.com/spec-kit/gas-delivery/internal/repository"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

const userKey = "auth_user"

// AuthMiddleware resolves the identity claim header to a user record and
// makes it available to downstream handlers for the rest of the request.
type AuthMiddleware struct {
	header   string
	resolver Resolver
	users    repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(header string, resolver Resolver, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{header: header, resolver: resolver, users: users}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	claim := c.Get(m.header)
	if claim == "" {
		return apperrors.NewUnauthorized("missing identity header")
	}

	userID, err := m.resolver.Resolve(c.Context(), claim)
	if err != nil {
		return apperrors.NewUnauthorized("unresolvable identity claim")
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUnauthorized("unknown user")
		}
		return apperrors.MapError(err)
	}

	c.Locals(userKey, user)
	return c.Next()
}

// CurrentUser retrieves the authenticated user for this request.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(userKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

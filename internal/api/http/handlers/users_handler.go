package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gas-delivery/internal/api/dto"
	"github.com/spec-kit/gas-delivery/internal/auth"
	"github.com/spec-kit/gas-delivery/internal/service"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// Register handles POST /api/users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, err := h.accounts.Register(c.Context(), req.Name, req.Contact, req.Password)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"id":   user.ID,
		"name": user.Name,
	}
	if token != "" {
		data["token"] = token
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": data})
}

// Login handles POST /api/users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, err := h.accounts.Login(c.Context(), req.Contact, req.Password)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"id":      user.ID,
		"name":    user.Name,
		"isAdmin": user.IsAdmin,
	}
	if token != "" {
		data["token"] = token
	}
	return c.JSON(fiber.Map{"data": data})
}

// GetProfile handles GET /api/users/profile.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	profile, err := h.accounts.Profile(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserProfile(profile)})
}

// UpdateProfile handles PUT /api/users/profile. The four profile fields are
// replaced wholesale with whatever the request carries.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.accounts.UpdateProfile(c.Context(), user.ID, service.ProfileUpdateInput{
		Name:       req.Name,
		Email:      req.Email,
		Address:    req.Address,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserProfile(updated)})
}

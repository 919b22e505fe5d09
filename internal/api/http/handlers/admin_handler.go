package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gas-delivery/internal/api/dto"
	"github.com/spec-kit/gas-delivery/internal/service"
)

// AdminHandler exposes system-wide views. All routes sit behind the admin
// gate; handlers assume an authorized caller.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admin.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"userCount":  stats.UserCount,
		"orderCount": stats.OrderCount,
	}})
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return err
	}
	profiles := make([]dto.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, dto.NewUserProfile(&users[i]))
	}
	return c.JSON(fiber.Map{"data": profiles})
}

// ListOrders handles GET /api/admin/orders.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.admin.ListOrders(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.OrderViews(orders)})
}

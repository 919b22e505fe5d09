package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gas-delivery/internal/repository"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	users       repository.UserRepository
	orders      repository.OrderRepository
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, users repository.UserRepository, orders repository.OrderRepository) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, users: users, orders: orders}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness with store sizes. The stores are in-process, so
// readiness follows liveness; the counts are what operators want to see.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	userCount, err := h.users.Count(c.Context())
	if err != nil {
		return err
	}
	orderCount, err := h.orders.Count(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"stores": fiber.Map{
			"users":  userCount,
			"orders": orderCount,
		},
	})
}

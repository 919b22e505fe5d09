package handlers

import (
	"bytes"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gas-delivery/internal/api/dto"
	"github.com/spec-kit/gas-delivery/internal/auth"
	"github.com/spec-kit/gas-delivery/internal/service"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

// OrdersHandler exposes the order lifecycle endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Create handles POST /api/orders. The body is an arbitrary JSON object that
// becomes the order payload.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	payload := map[string]any{}
	if len(bytes.TrimSpace(c.Body())) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}

	order, err := h.orders.Create(c.Context(), user, payload)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.OrderView(order)})
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	orders, err := h.orders.List(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.OrderViews(orders)})
}

// Cancel handles PUT /api/orders/:orderId/cancel.
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	order, err := h.orders.Cancel(c.Context(), user.ID, c.Params("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.OrderView(order)})
}

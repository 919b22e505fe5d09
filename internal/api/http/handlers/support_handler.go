package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gas-delivery/internal/api/dto"
	"github.com/spec-kit/gas-delivery/internal/auth"
	"github.com/spec-kit/gas-delivery/internal/service"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

// SupportHandler exposes the support ticket endpoints.
type SupportHandler struct {
	support *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(support *service.SupportService) *SupportHandler {
	return &SupportHandler{support: support}
}

// Submit handles POST /api/support/tickets.
func (h *SupportHandler) Submit(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.support.Submit(c.Context(), user, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketView(ticket)})
}

// List handles GET /api/support/tickets.
func (h *SupportHandler) List(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	tickets, err := h.support.List(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketViews(tickets)})
}

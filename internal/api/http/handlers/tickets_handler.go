package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/shopease/helpdesk/internal/api/dto"
	"github.com/shopease/helpdesk/internal/service"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// List handles GET /tickets, most recently created first.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	details, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(details))
	for i := range details {
		items = append(items, dto.NewTicketResponse(&details[i]))
	}
	return c.JSON(items)
}

// Get handles GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	detail, err := h.service.Get(c.Context(), ticketID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(detail))
}

// Create handles POST /ticket (authenticated).
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CustomerID <= 0 {
		return apperrors.NewValidationError("customerID required", nil)
	}

	detail, err := h.service.Create(c.Context(), service.TicketCreateInput{
		CustomerID:       req.CustomerID,
		IssueDescription: req.IssueDescription,
		SupportAgentID:   req.SupportAgentID,
		Status:           req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(detail))
}

// Update handles PUT /ticket/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	detail, err := h.service.Update(c.Context(), ticketID, service.TicketUpdateInput{
		CustomerID:       req.CustomerID,
		IssueDescription: req.IssueDescription,
		SupportAgent: service.AgentPatch{
			Set: req.SupportAgentID.Set,
			ID:  req.SupportAgentID.Value,
		},
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(detail))
}

// Delete handles DELETE /ticket/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), ticketID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseTicketID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("ticket id must be a positive integer", nil)
	}
	return id, nil
}

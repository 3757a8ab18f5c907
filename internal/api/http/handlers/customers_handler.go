package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopease/helpdesk/internal/api/dto"
	"github.com/shopease/helpdesk/internal/service"
)

// CustomersHandler manages customer search and directory endpoints.
type CustomersHandler struct {
	service *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{service: customerService}
}

// Search handles GET /customer/search/:term.
func (h *CustomersHandler) Search(c *fiber.Ctx) error {
	customers, err := h.service.Search(c.Context(), c.Params("term"))
	if err != nil {
		return err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, dto.NewCustomerResponse(&customers[i]))
	}
	return c.JSON(items)
}

// Addresses handles GET /customer/addresses.
func (h *CustomersHandler) Addresses(c *fiber.Ctx) error {
	entries, err := h.service.ListAddresses(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AddressResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.NewAddressResponse(entry))
	}
	return c.JSON(items)
}

// List handles GET /customers (manager only).
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, dto.NewCustomerResponse(&customers[i]))
	}
	return c.JSON(items)
}

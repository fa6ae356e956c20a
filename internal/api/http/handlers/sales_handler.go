package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/dto"
	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/service"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// SalesHandler manages sale record endpoints.
type SalesHandler struct {
	service *service.SaleService
}

// NewSalesHandler constructs handler.
func NewSalesHandler(saleService *service.SaleService) *SalesHandler {
	return &SalesHandler{service: saleService}
}

// List GET /sales.
func (h *SalesHandler) List(c *fiber.Ctx) error {
	sales, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, saleResponse(&sales[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /sales/:id.
func (h *SalesHandler) Get(c *fiber.Ctx) error {
	sale, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": saleResponse(sale)})
}

// Create POST /sales.
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var req dto.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	sale, err := h.service.Create(c.Context(), saleInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": saleResponse(sale)})
}

// Update PUT /sales/:id.
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var req dto.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	sale, err := h.service.Update(c.Context(), c.Params("id"), saleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": saleResponse(sale)})
}

// Delete DELETE /sales/:id.
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func saleInput(req dto.SaleRequest) service.SaleInput {
	input := service.SaleInput{
		Cliente:    req.Cliente,
		ValorCents: req.ValorCents,
		Status:     req.Status,
	}
	if req.Data != nil {
		input.Data = *req.Data
	} else {
		input.Data = time.Time{}
	}
	return input
}

func saleResponse(sale *domain.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:         sale.ID,
		Cliente:    sale.Cliente,
		ValorCents: sale.ValorCents,
		Data:       sale.Data,
		Status:     sale.Status,
		CreatedAt:  sale.CreatedAt,
	}
}

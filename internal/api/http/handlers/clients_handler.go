package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/dto"
	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/service"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// ClientsHandler manages client record endpoints.
type ClientsHandler struct {
	service *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{service: clientService}
}

// List GET /clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	clients, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, clientResponse(&clients[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /clients/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	client, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

// Create POST /clients.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	client, err := h.service.Create(c.Context(), clientInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": clientResponse(client)})
}

// Update PUT /clients/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	client, err := h.service.Update(c.Context(), c.Params("id"), clientInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

// Delete DELETE /clients/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func clientInput(req dto.ClientRequest) service.ClientInput {
	return service.ClientInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Dominio:  req.Dominio,
		Plano:    req.Plano,
	}
}

func clientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        client.ID,
		Nome:      client.Nome,
		Email:     client.Email,
		Telefone:  client.Telefone,
		Dominio:   client.Dominio,
		Plano:     client.Plano,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/dto"
	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/service"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// VersionsHandler manages changelog endpoints.
type VersionsHandler struct {
	service *service.VersionService
}

// NewVersionsHandler constructs handler.
func NewVersionsHandler(versionService *service.VersionService) *VersionsHandler {
	return &VersionsHandler{service: versionService}
}

// List GET /versions.
func (h *VersionsHandler) List(c *fiber.Ctx) error {
	versions, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.VersionResponse, 0, len(versions))
	for i := range versions {
		items = append(items, versionResponse(&versions[i], true))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /versions/:id.
func (h *VersionsHandler) Get(c *fiber.Ctx) error {
	version, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": versionResponse(version, true)})
}

// Create POST /versions.
func (h *VersionsHandler) Create(c *fiber.Ctx) error {
	var req dto.VersionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	version, err := h.service.Create(c.Context(), versionInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": versionResponse(version, true)})
}

// Update PUT /versions/:id.
func (h *VersionsHandler) Update(c *fiber.Ctx) error {
	var req dto.VersionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	version, err := h.service.Update(c.Context(), c.Params("id"), versionInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": versionResponse(version, true)})
}

// Delete DELETE /versions/:id.
func (h *VersionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// SuggestNext GET /versions/next.
func (h *VersionsHandler) SuggestNext(c *fiber.Ctx) error {
	suggestion, err := h.service.SuggestNext(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NextVersionResponse{Suggestion: suggestion}})
}

// PublicLookup GET /public/changelog/:token. Unauthenticated; the share token
// is the capability.
func (h *VersionsHandler) PublicLookup(c *fiber.Ctx) error {
	version, err := h.service.GetByShareToken(c.Context(), c.Params("token"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": versionResponse(version, false)})
}

func versionInput(req dto.VersionRequest) service.VersionInput {
	return service.VersionInput{
		Versao:       req.Versao,
		Descricao:    req.Descricao,
		LinkDownload: req.LinkDownload,
	}
}

func versionResponse(version *domain.Version, includeToken bool) dto.VersionResponse {
	resp := dto.VersionResponse{
		ID:           version.ID,
		Versao:       version.Versao,
		Descricao:    version.Descricao,
		LinkDownload: version.LinkDownload,
		CreatedAt:    version.CreatedAt,
	}
	if includeToken {
		resp.ShareToken = version.ShareToken
	}
	return resp
}

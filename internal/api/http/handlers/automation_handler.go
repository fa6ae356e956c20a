package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/dto"
	"github.com/victoreder/admin-hublabel-sub000/internal/automation"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// AutomationHandler exposes the changelog asset link discovery.
type AutomationHandler struct {
	lookup *automation.LookupService
}

// NewAutomationHandler constructs handler.
func NewAutomationHandler(lookup *automation.LookupService) *AutomationHandler {
	return &AutomationHandler{lookup: lookup}
}

// AssetURL GET /automation/workflows/:id/asset.
func (h *AutomationHandler) AssetURL(c *fiber.Ctx) error {
	workflowID := c.Params("id")
	url, err := h.lookup.AssetURL(c.Context(), workflowID)
	if err != nil {
		if errors.Is(err, automation.ErrNoAssetURL) {
			return apperrors.NewNotFound("asset url", map[string]any{"workflow_id": workflowID})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AutomationAssetResponse{
		WorkflowID: workflowID,
		AssetURL:   url,
	}})
}

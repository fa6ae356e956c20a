package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/dto"
	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/service"
	"github.com/victoreder/admin-hublabel-sub000/internal/storage"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// InstallationsHandler manages kanban board endpoints.
type InstallationsHandler struct {
	service *service.InstallationService
	store   storage.Store
}

// NewInstallationsHandler constructs handler.
func NewInstallationsHandler(installationService *service.InstallationService, store storage.Store) *InstallationsHandler {
	return &InstallationsHandler{service: installationService, store: store}
}

// Board GET /installations/board.
func (h *InstallationsHandler) Board(c *fiber.Ctx) error {
	board, err := h.service.BoardView(c.Context())
	if err != nil {
		return err
	}
	now := time.Now()
	window := h.service.SLAWindow()
	resp := dto.BoardResponse{
		Aguardando:  h.cards(board.Aguardando, window, now),
		EmAndamento: h.cards(board.EmAndamento, window, now),
		Finalizado:  h.cards(board.Finalizado, window, now),
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Create POST /installations.
func (h *InstallationsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInstallationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	inst, err := h.service.Create(c.Context(), service.InstallationInput{
		Telefone:       req.Telefone,
		Dominio:        req.Dominio,
		Prioridade:     req.Prioridade,
		ColetarAcessos: req.ColetarAcessos,
		Acessos:        req.Acessos,
		Arquivos:       req.Arquivos,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.card(inst, time.Now())})
}

// Get GET /installations/:id.
func (h *InstallationsHandler) Get(c *fiber.Ctx) error {
	inst, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.card(inst, time.Now())})
}

// Update PUT /installations/:id.
func (h *InstallationsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInstallationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	inst, err := h.service.Update(c.Context(), c.Params("id"), service.InstallationInput{
		Telefone:       req.Telefone,
		Dominio:        req.Dominio,
		Prioridade:     req.Prioridade,
		ColetarAcessos: req.ColetarAcessos,
		Acessos:        req.Acessos,
		Arquivos:       req.Arquivos,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.card(inst, time.Now())})
}

// Delete DELETE /installations/:id.
func (h *InstallationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Move POST /installations/:id/move.
func (h *InstallationsHandler) Move(c *fiber.Ctx) error {
	var req dto.MoveInstallationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.service.RequestMove(c.Context(), c.Params("id"), req.From, req.To)
	if err != nil {
		return err
	}

	resp := dto.MoveInstallationResponse{Moved: !result.NoOp}
	if result.Installation != nil {
		card := h.card(result.Installation, time.Now())
		resp.Installation = &card
	}
	return c.JSON(fiber.Map{"data": resp})
}

// UploadAttachment POST /installations/attachments (multipart form, field "file").
func (h *InstallationsHandler) UploadAttachment(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	arquivo, err := h.store.Upload(c.Context(), fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.AttachmentUploadResponse{
		Name: arquivo.Name,
		URL:  arquivo.URL,
	}})
}

func (h *InstallationsHandler) cards(insts []domain.Installation, window time.Duration, now time.Time) []dto.InstallationResponse {
	out := make([]dto.InstallationResponse, 0, len(insts))
	for i := range insts {
		out = append(out, installationResponse(&insts[i], service.DeliveryBadge(&insts[i], window, now)))
	}
	return out
}

func (h *InstallationsHandler) card(inst *domain.Installation, now time.Time) dto.InstallationResponse {
	return installationResponse(inst, service.DeliveryBadge(inst, h.service.SLAWindow(), now))
}

func installationResponse(inst *domain.Installation, badge service.Badge) dto.InstallationResponse {
	arquivos := inst.Arquivos
	if arquivos == nil {
		arquivos = []domain.Arquivo{}
	}
	return dto.InstallationResponse{
		ID:             inst.ID,
		Telefone:       inst.Telefone,
		Dominio:        inst.Dominio,
		Status:         inst.Status,
		Prioridade:     inst.Prioridade,
		ColetarAcessos: inst.ColetarAcessos,
		Acessos:        inst.Acessos,
		Arquivos:       arquivos,
		Badge:          badge,
		CreatedAt:      inst.CreatedAt,
		UpdatedAt:      inst.UpdatedAt,
	}
}

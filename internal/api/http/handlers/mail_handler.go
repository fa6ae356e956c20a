package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/dto"
	"github.com/victoreder/admin-hublabel-sub000/internal/mail"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// MailHandler relays operator-initiated emails to the upstream provider.
type MailHandler struct {
	mailer mail.Mailer
	logger *zap.Logger
}

// NewMailHandler constructs handler.
func NewMailHandler(mailer mail.Mailer, logger *zap.Logger) *MailHandler {
	return &MailHandler{mailer: mailer, logger: logger}
}

// SendEmail POST /send-email.
func (h *MailHandler) SendEmail(c *fiber.Ctx) error {
	var req dto.SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.To) == 0 || strings.TrimSpace(req.Subject) == "" {
		return apperrors.NewValidationError("to and subject required", nil)
	}

	messageID, err := h.mailer.Send(c.Context(), mail.Message{
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
	})
	if err != nil {
		h.logger.Warn("mail relay failed", zap.Error(err))
		return apperrors.NewDomainError("MAIL_SEND_FAILED", "mail provider rejected the message", fiber.StatusBadGateway, nil)
	}
	return c.JSON(fiber.Map{"data": dto.SendEmailResponse{MessageID: messageID}})
}

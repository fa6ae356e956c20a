package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/config"
	"github.com/victoreder/admin-hublabel-sub000/internal/events"
	"github.com/victoreder/admin-hublabel-sub000/internal/mail"
)

// NotificationService sends emails for installation lifecycle events. Each
// send is attempted exactly once; failures are logged and never propagate
// to the mutation that triggered them.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	logger     *zap.Logger
	cfg        config.MailConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger, cfg config.MailConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInstallationCreated, n.handleCreated)
	n.dispatcher.Subscribe(events.EventInstallationFinalized, n.handleFinalized)
}

func (n *NotificationService) handleCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InstallationCreatedPayload)
	if !ok {
		return nil
	}
	subject := fmt.Sprintf("Nova instalação: %s", displayDomain(payload.Dominio))
	body := fmt.Sprintf(
		"<p>Uma nova instalação foi registrada.</p><p>Domínio: %s<br>Telefone: %s<br>Prioridade: %s</p>",
		displayDomain(payload.Dominio), payload.Telefone, payload.Prioridade)
	n.send(ctx, event, subject, body)
	return nil
}

func (n *NotificationService) handleFinalized(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InstallationFinalizedPayload)
	if !ok {
		return nil
	}
	subject := fmt.Sprintf("Instalação finalizada: %s", displayDomain(payload.Dominio))
	body := fmt.Sprintf(
		"<p>A instalação foi finalizada.</p><p>Domínio: %s<br>Telefone: %s</p>",
		displayDomain(payload.Dominio), payload.Telefone)
	n.send(ctx, event, subject, body)
	return nil
}

func (n *NotificationService) send(ctx context.Context, event events.Event, subject, body string) {
	if n.mailer == nil || strings.TrimSpace(n.cfg.NotifyTo) == "" {
		return
	}
	messageID, err := n.mailer.Send(ctx, mail.Message{
		To:      []string{n.cfg.NotifyTo},
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		n.logger.Warn("notification send failed",
			zap.String("installation_id", event.InstallationID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return
	}
	n.logger.Info("notification sent",
		zap.String("installation_id", event.InstallationID),
		zap.String("event_type", string(event.Type)),
		zap.String("message_id", messageID))
}

func displayDomain(dominio string) string {
	if strings.TrimSpace(dominio) == "" {
		return "(não informado)"
	}
	return dominio
}

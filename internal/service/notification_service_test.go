package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/config"
	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/events"
	"github.com/victoreder/admin-hublabel-sub000/internal/mail"
)

type fakeMailer struct {
	sent    []mail.Message
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, msg)
	return "msg-1", nil
}

func notifyConfig() config.MailConfig {
	return config.MailConfig{NotifyTo: "ops@hublabel.test"}
}

func TestNotificationOnCreatedEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &fakeMailer{}
	svc := NewNotificationService(dispatcher, mailer, zap.NewNop(), notifyConfig())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:           events.EventInstallationCreated,
		InstallationID: "inst-1",
		Payload: events.InstallationCreatedPayload{
			Dominio:    "cliente.com",
			Telefone:   "+55 11 99999-0000",
			Prioridade: domain.PriorityUrgente,
		},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent: got %d, want 1", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if len(msg.To) != 1 || msg.To[0] != "ops@hublabel.test" {
		t.Fatalf("to: %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "cliente.com") {
		t.Fatalf("subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "+55 11 99999-0000") {
		t.Fatalf("body missing telefone: %q", msg.HTML)
	}
}

func TestNotificationOnFinalizedEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &fakeMailer{}
	svc := NewNotificationService(dispatcher, mailer, zap.NewNop(), notifyConfig())
	svc.RegisterHandlers()

	_ = dispatcher.Publish(context.Background(), events.Event{
		Type:           events.EventInstallationFinalized,
		InstallationID: "inst-1",
		Payload:        events.InstallationFinalizedPayload{Dominio: "cliente.com"},
	})
	if len(mailer.sent) != 1 {
		t.Fatalf("sent: got %d, want 1", len(mailer.sent))
	}
	if !strings.Contains(mailer.sent[0].Subject, "finalizada") {
		t.Fatalf("subject: %q", mailer.sent[0].Subject)
	}
}

func TestNotificationFailureDoesNotPropagate(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &fakeMailer{sendErr: errors.New("provider down")}
	svc := NewNotificationService(dispatcher, mailer, zap.NewNop(), notifyConfig())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventInstallationFinalized,
		Payload: events.InstallationFinalizedPayload{Dominio: "cliente.com"},
	})
	if err != nil {
		t.Fatalf("send failure leaked to the publisher: %v", err)
	}
}

func TestNotificationSkippedWithoutRecipient(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &fakeMailer{}
	svc := NewNotificationService(dispatcher, mailer, zap.NewNop(), config.MailConfig{})
	svc.RegisterHandlers()

	_ = dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventInstallationCreated,
		Payload: events.InstallationCreatedPayload{Dominio: "cliente.com"},
	})
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no send without notify recipient, got %d", len(mailer.sent))
	}
}

func TestNotificationUsesPlaceholderForEmptyDomain(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mailer := &fakeMailer{}
	svc := NewNotificationService(dispatcher, mailer, zap.NewNop(), notifyConfig())
	svc.RegisterHandlers()

	_ = dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventInstallationCreated,
		Payload: events.InstallationCreatedPayload{Dominio: "  "},
	})
	if len(mailer.sent) != 1 {
		t.Fatalf("sent: got %d, want 1", len(mailer.sent))
	}
	if !strings.Contains(mailer.sent[0].Subject, "(não informado)") {
		t.Fatalf("subject: %q", mailer.sent[0].Subject)
	}
}

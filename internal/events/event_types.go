package events

import (
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInstallationCreated   EventType = "installation_created"
	EventInstallationMoved     EventType = "installation_moved"
	EventInstallationFinalized EventType = "installation_finalized"
	EventInstallationDeleted   EventType = "installation_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID             string      `json:"id"`
	Type           EventType   `json:"type"`
	InstallationID string      `json:"installation_id"`
	OperatorID     string      `json:"operator_id,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
	Payload        interface{} `json:"payload"`
}

// InstallationCreatedPayload payload.
type InstallationCreatedPayload struct {
	Dominio    string                      `json:"dominio"`
	Telefone   string                      `json:"telefone"`
	Prioridade domain.InstallationPriority `json:"prioridade"`
}

// InstallationMovedPayload payload.
type InstallationMovedPayload struct {
	OldStatus domain.InstallationStatus `json:"old_status"`
	NewStatus domain.InstallationStatus `json:"new_status"`
}

// InstallationFinalizedPayload payload.
type InstallationFinalizedPayload struct {
	Dominio  string `json:"dominio"`
	Telefone string `json:"telefone"`
}

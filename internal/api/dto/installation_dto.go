package dto

import (
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/service"
)

// CreateInstallationRequest payload.
type CreateInstallationRequest struct {
	Telefone       string                      `json:"telefone"`
	Dominio        string                      `json:"dominio"`
	Prioridade     domain.InstallationPriority `json:"prioridade"`
	ColetarAcessos bool                        `json:"coletar_acessos"`
	Acessos        string                      `json:"acessos"`
	Arquivos       []domain.Arquivo            `json:"arquivos"`
}

// UpdateInstallationRequest payload. Status changes go through the move
// endpoint, never through edits.
type UpdateInstallationRequest struct {
	Telefone       string                      `json:"telefone"`
	Dominio        string                      `json:"dominio"`
	Prioridade     domain.InstallationPriority `json:"prioridade"`
	ColetarAcessos bool                        `json:"coletar_acessos"`
	Acessos        string                      `json:"acessos"`
	Arquivos       []domain.Arquivo            `json:"arquivos"`
}

// MoveInstallationRequest is the drag-and-drop intent.
type MoveInstallationRequest struct {
	From domain.InstallationStatus `json:"from"`
	To   domain.InstallationStatus `json:"to"`
}

// InstallationResponse is one card.
type InstallationResponse struct {
	ID             string                      `json:"id"`
	Telefone       string                      `json:"telefone"`
	Dominio        string                      `json:"dominio"`
	Status         domain.InstallationStatus   `json:"status"`
	Prioridade     domain.InstallationPriority `json:"prioridade"`
	ColetarAcessos bool                        `json:"coletar_acessos"`
	Acessos        string                      `json:"acessos"`
	Arquivos       []domain.Arquivo            `json:"arquivos"`
	Badge          service.Badge               `json:"badge"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// BoardResponse groups cards per kanban column, display-ordered.
type BoardResponse struct {
	Aguardando  []InstallationResponse `json:"aguardando"`
	EmAndamento []InstallationResponse `json:"em_andamento"`
	Finalizado  []InstallationResponse `json:"finalizado"`
}

// MoveInstallationResponse reports a move outcome.
type MoveInstallationResponse struct {
	Moved        bool                  `json:"moved"`
	Installation *InstallationResponse `json:"installation,omitempty"`
}

// AttachmentUploadResponse is one uploaded attachment reference.
type AttachmentUploadResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

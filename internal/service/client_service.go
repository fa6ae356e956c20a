package service

import (
	"context"
	"strings"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/repository"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// ClientService manages reseller customer records.
type ClientService struct {
	clients repository.ClientRepository
}

// ClientInput describes create/edit payloads.
type ClientInput struct {
	Nome     string
	Email    string
	Telefone string
	Dominio  string
	Plano    string
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// Create stores a new client record.
func (s *ClientService) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, apperrors.NewValidationError("nome obrigatório", nil)
	}
	client := &domain.Client{
		Nome:     strings.TrimSpace(input.Nome),
		Email:    strings.TrimSpace(input.Email),
		Telefone: input.Telefone,
		Dominio:  input.Dominio,
		Plano:    input.Plano,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update edits an existing client record.
func (s *ClientService) Update(ctx context.Context, id string, input ClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, apperrors.NewValidationError("nome obrigatório", nil)
	}
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	client.Nome = strings.TrimSpace(input.Nome)
	client.Email = strings.TrimSpace(input.Email)
	client.Telefone = input.Telefone
	client.Dominio = input.Dominio
	client.Plano = input.Plano
	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns clients ordered by name.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// Get returns one client.
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// Delete removes a client record.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/repository"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// SaleService manages sale records.
type SaleService struct {
	sales repository.SaleRepository
}

// SaleInput describes create/edit payloads.
type SaleInput struct {
	Cliente    string
	ValorCents int64
	Data       time.Time
	Status     domain.SaleStatus
}

// NewSaleService constructs the service.
func NewSaleService(sales repository.SaleRepository) *SaleService {
	return &SaleService{sales: sales}
}

// Create stores a new sale.
func (s *SaleService) Create(ctx context.Context, input SaleInput) (*domain.Sale, error) {
	if strings.TrimSpace(input.Cliente) == "" {
		return nil, apperrors.NewValidationError("cliente obrigatório", nil)
	}
	if input.Status == "" {
		input.Status = domain.SalePendente
	}
	if !domain.ValidSaleStatus(input.Status) {
		return nil, apperrors.NewValidationError("status inválido", map[string]any{"status": input.Status})
	}
	if input.Data.IsZero() {
		input.Data = time.Now()
	}
	sale := &domain.Sale{
		Cliente:    strings.TrimSpace(input.Cliente),
		ValorCents: input.ValorCents,
		Data:       input.Data,
		Status:     input.Status,
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Update edits an existing sale.
func (s *SaleService) Update(ctx context.Context, id string, input SaleInput) (*domain.Sale, error) {
	if strings.TrimSpace(input.Cliente) == "" {
		return nil, apperrors.NewValidationError("cliente obrigatório", nil)
	}
	if input.Status != "" && !domain.ValidSaleStatus(input.Status) {
		return nil, apperrors.NewValidationError("status inválido", map[string]any{"status": input.Status})
	}
	sale, err := s.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sale.Cliente = strings.TrimSpace(input.Cliente)
	sale.ValorCents = input.ValorCents
	if !input.Data.IsZero() {
		sale.Data = input.Data
	}
	if input.Status != "" {
		sale.Status = input.Status
	}
	if err := s.sales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// List returns sales newest first.
func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.List(ctx)
}

// Get returns one sale.
func (s *SaleService) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.sales.GetByID(ctx, id)
}

// Delete removes a sale.
func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.sales.Delete(ctx, id)
}

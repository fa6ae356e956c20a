package dto

import (
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// SaleRequest payload for create/update.
type SaleRequest struct {
	Cliente    string            `json:"cliente"`
	ValorCents int64             `json:"valor_cents"`
	Data       *time.Time        `json:"data"`
	Status     domain.SaleStatus `json:"status"`
}

// SaleResponse is one sale record.
type SaleResponse struct {
	ID         string            `json:"id"`
	Cliente    string            `json:"cliente"`
	ValorCents int64             `json:"valor_cents"`
	Data       time.Time         `json:"data"`
	Status     domain.SaleStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

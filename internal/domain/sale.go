package domain

import "time"

// SaleStatus enumerates payment states for a sale.
type SaleStatus string

const (
	SalePendente  SaleStatus = "pendente"
	SalePago      SaleStatus = "pago"
	SaleCancelado SaleStatus = "cancelado"
)

// ValidSaleStatus reports whether s is a known sale status.
func ValidSaleStatus(s SaleStatus) bool {
	switch s {
	case SalePendente, SalePago, SaleCancelado:
		return true
	}
	return false
}

// Sale records one sale for tracking purposes.
type Sale struct {
	ID         string
	Cliente    string
	ValorCents int64
	Data       time.Time
	Status     SaleStatus
	CreatedAt  time.Time
}

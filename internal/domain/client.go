package domain

import "time"

// Client is a reseller customer record.
type Client struct {
	ID        string
	Nome      string
	Email     string
	Telefone  string
	Dominio   string
	Plano     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package dto

import "time"

// ClientRequest payload for create/update.
type ClientRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Dominio  string `json:"dominio"`
	Plano    string `json:"plano"`
}

// ClientResponse is one client record.
type ClientResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Dominio   string    `json:"dominio"`
	Plano     string    `json:"plano"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

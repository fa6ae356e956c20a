package domain

import "time"

// InstallationStatus enumerates kanban columns for installation tickets.
type InstallationStatus string

const (
	StatusAguardando  InstallationStatus = "aguardando"
	StatusEmAndamento InstallationStatus = "em_andamento"
	StatusFinalizado  InstallationStatus = "finalizado"
)

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s InstallationStatus) bool {
	switch s {
	case StatusAguardando, StatusEmAndamento, StatusFinalizado:
		return true
	}
	return false
}

// InstallationPriority affects display order only, never the lifecycle.
type InstallationPriority string

const (
	PriorityNormal  InstallationPriority = "normal"
	PriorityUrgente InstallationPriority = "urgente"
)

// ValidPriority reports whether p is a known priority.
func ValidPriority(p InstallationPriority) bool {
	return p == PriorityNormal || p == PriorityUrgente
}

// Arquivo references one uploaded attachment in blob storage.
type Arquivo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Installation is the aggregate for one installation ticket on the board.
type Installation struct {
	ID             string
	Telefone       string
	Dominio        string
	Status         InstallationStatus
	Prioridade     InstallationPriority
	ColetarAcessos bool
	Acessos        string
	Arquivos       []Arquivo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

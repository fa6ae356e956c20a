package service

import (
	"fmt"
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// BadgeSeverity is the visual tier of the delivery badge.
type BadgeSeverity string

const (
	SeveritySuccess  BadgeSeverity = "success"
	SeverityNormal   BadgeSeverity = "normal"
	SeverityWarning  BadgeSeverity = "warning"
	SeverityCritical BadgeSeverity = "critical"
)

// Badge is the computed SLA indicator for one card.
type Badge struct {
	Text     string        `json:"text"`
	Severity BadgeSeverity `json:"severity"`
}

// DeliveryBadge computes the SLA badge from wall-clock time and the ticket's
// creation timestamp. Finalized tickets are always "Entregue" regardless of
// age. Recomputed on every render, never stored.
func DeliveryBadge(inst *domain.Installation, window time.Duration, now time.Time) Badge {
	if inst.Status == domain.StatusFinalizado {
		return Badge{Text: "Entregue", Severity: SeveritySuccess}
	}

	deadline := inst.CreatedAt.Add(window)
	remaining := int(deadline.Sub(now).Hours())
	if remaining <= 0 {
		return Badge{Text: "Atrasado", Severity: SeverityCritical}
	}

	text := fmt.Sprintf("%dh restantes", remaining)
	switch {
	case remaining <= 6:
		return Badge{Text: text, Severity: SeverityCritical}
	case remaining <= 12:
		return Badge{Text: text, Severity: SeverityWarning}
	default:
		return Badge{Text: text, Severity: SeverityNormal}
	}
}

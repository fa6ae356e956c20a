package service

import (
	"testing"
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

func TestDeliveryBadge(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	cases := []struct {
		name         string
		status       domain.InstallationStatus
		age          time.Duration
		wantText     string
		wantSeverity BadgeSeverity
	}{
		{"finalized is always delivered", domain.StatusFinalizado, 72 * time.Hour, "Entregue", SeveritySuccess},
		{"finalized fresh is delivered too", domain.StatusFinalizado, time.Hour, "Entregue", SeveritySuccess},
		{"exactly at deadline is overdue", domain.StatusAguardando, 24 * time.Hour, "Atrasado", SeverityCritical},
		{"past deadline is overdue", domain.StatusEmAndamento, 30 * time.Hour, "Atrasado", SeverityCritical},
		{"one hour old is comfortable", domain.StatusAguardando, time.Hour, "23h restantes", SeverityNormal},
		{"four hours remaining is critical", domain.StatusAguardando, 20 * time.Hour, "4h restantes", SeverityCritical},
		{"six hours remaining is critical", domain.StatusEmAndamento, 18 * time.Hour, "6h restantes", SeverityCritical},
		{"ten hours remaining is warning", domain.StatusAguardando, 14 * time.Hour, "10h restantes", SeverityWarning},
		{"twelve hours remaining is warning", domain.StatusAguardando, 12 * time.Hour, "12h restantes", SeverityWarning},
		{"thirteen hours remaining is normal", domain.StatusAguardando, 11 * time.Hour, "13h restantes", SeverityNormal},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			inst := &domain.Installation{
				Status:    tt.status,
				CreatedAt: now.Add(-tt.age),
			}
			badge := DeliveryBadge(inst, window, now)
			if badge.Text != tt.wantText {
				t.Errorf("text: got %q, want %q", badge.Text, tt.wantText)
			}
			if badge.Severity != tt.wantSeverity {
				t.Errorf("severity: got %q, want %q", badge.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestDeliveryBadgeFlooring(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	// 23.5h remaining floors to 23 whole hours.
	inst := &domain.Installation{
		Status:    domain.StatusAguardando,
		CreatedAt: now.Add(-30 * time.Minute),
	}
	badge := DeliveryBadge(inst, window, now)
	if badge.Text != "23h restantes" {
		t.Fatalf("got %q, want %q", badge.Text, "23h restantes")
	}

	// Under one whole hour remaining floors to zero and reads as overdue.
	inst = &domain.Installation{
		Status:    domain.StatusAguardando,
		CreatedAt: now.Add(-23*time.Hour - 30*time.Minute),
	}
	badge = DeliveryBadge(inst, window, now)
	if badge.Text != "Atrasado" || badge.Severity != SeverityCritical {
		t.Fatalf("got %q/%q, want Atrasado/critical", badge.Text, badge.Severity)
	}
}

package service

import (
	"sort"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// SortCards orders installation cards for display: urgent tickets first, then
// oldest-created first within the same priority tier. The sort is stable and
// pure; persisted order is never affected.
func SortCards(cards []domain.Installation) []domain.Installation {
	ordered := make([]domain.Installation, len(cards))
	copy(ordered, cards)

	sort.SliceStable(ordered, func(i, j int) bool {
		iUrgent := ordered[i].Prioridade == domain.PriorityUrgente
		jUrgent := ordered[j].Prioridade == domain.PriorityUrgente
		if iUrgent != jUrgent {
			return iUrgent
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}

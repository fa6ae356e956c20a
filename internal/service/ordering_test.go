package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

func card(id string, prioridade domain.InstallationPriority, createdAt time.Time) domain.Installation {
	return domain.Installation{
		ID:         id,
		Status:     domain.StatusAguardando,
		Prioridade: prioridade,
		CreatedAt:  createdAt,
	}
}

func TestSortCardsUrgentFirstThenOldest(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	cards := []domain.Installation{
		card("n-new", domain.PriorityNormal, base.Add(3*time.Hour)),
		card("u-new", domain.PriorityUrgente, base.Add(2*time.Hour)),
		card("n-old", domain.PriorityNormal, base),
		card("u-old", domain.PriorityUrgente, base.Add(time.Hour)),
	}

	ordered := SortCards(cards)

	want := []string{"u-old", "u-new", "n-old", "n-new"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, ordered[i].ID, id)
		}
	}
}

func TestSortCardsInvariantUnderInsertionOrder(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	cards := []domain.Installation{
		card("a", domain.PriorityUrgente, base),
		card("b", domain.PriorityUrgente, base.Add(time.Hour)),
		card("c", domain.PriorityNormal, base.Add(30*time.Minute)),
		card("d", domain.PriorityNormal, base.Add(2*time.Hour)),
		card("e", domain.PriorityUrgente, base.Add(3*time.Hour)),
	}
	want := []string{"a", "b", "e", "c", "d"}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]domain.Installation, len(cards))
		copy(shuffled, cards)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		ordered := SortCards(shuffled)
		for i, id := range want {
			if ordered[i].ID != id {
				t.Fatalf("trial %d position %d: got %s, want %s", trial, i, ordered[i].ID, id)
			}
		}
	}
}

func TestSortCardsDoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	cards := []domain.Installation{
		card("late", domain.PriorityNormal, base.Add(time.Hour)),
		card("urgent", domain.PriorityUrgente, base),
	}

	_ = SortCards(cards)

	if cards[0].ID != "late" || cards[1].ID != "urgent" {
		t.Fatalf("input slice was reordered: %s, %s", cards[0].ID, cards[1].ID)
	}
}

func TestSortCardsStableForEqualKeys(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	cards := []domain.Installation{
		card("first", domain.PriorityNormal, at),
		card("second", domain.PriorityNormal, at),
		card("third", domain.PriorityNormal, at),
	}

	ordered := SortCards(cards)

	for i, id := range []string{"first", "second", "third"} {
		if ordered[i].ID != id {
			t.Fatalf("stability broken at %d: got %s, want %s", i, ordered[i].ID, id)
		}
	}
}

package events

import (
	"math"
	"testing"

	"nitvon/internal/game"
)

func TestCatalogShape(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("catalog size = %d, want 3", len(all))
	}
	for _, e := range all {
		if len(e.Choices) != 3 {
			t.Fatalf("event %q has %d choices, want 3", e.ID, len(e.Choices))
		}
		for _, c := range e.Choices {
			if c.XPReward <= 0 {
				t.Fatalf("choice %s/%s has no XP reward", e.ID, c.ID)
			}
		}
	}
}

func TestResolveAppliesOutcome(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	res, err := Resolve(store, "exchange-hack", "buy-dip")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.XPGained != 25 {
		t.Fatalf("xp = %d, want 25", res.XPGained)
	}

	s := store.Snapshot()
	if s.Player.XP != 25 {
		t.Fatalf("store xp = %d, want 25", s.Player.XP)
	}
	want := game.StartingPortfolio * 1.15
	if math.Abs(s.Player.Portfolio-want) > 1e-9 {
		t.Fatalf("portfolio = %v, want %v", s.Player.Portfolio, want)
	}
}

func TestResolveNegativeOutcome(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	if _, err := Resolve(store, "fomo-wave", "join-fomo"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := game.StartingPortfolio * 0.85
	if got := store.Snapshot().Player.Portfolio; math.Abs(got-want) > 1e-9 {
		t.Fatalf("portfolio = %v, want %v", got, want)
	}
}

func TestResolveUnknownIDs(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	if _, err := Resolve(store, "nope", "buy-dip"); err != ErrUnknownEvent {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
	if _, err := Resolve(store, "exchange-hack", "nope"); err != ErrUnknownChoice {
		t.Fatalf("expected ErrUnknownChoice, got %v", err)
	}
	if store.Snapshot().Player.XP != 0 {
		t.Fatal("failed resolve must not grant XP")
	}
}

func TestPickerDrawsFromCatalog(t *testing.T) {
	p := NewPicker(1)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[p.Next().ID] = true
	}
	if len(seen) != 3 {
		t.Fatalf("picker covered %d events over 50 draws, want 3", len(seen))
	}
}

package shop

import (
	"testing"

	"nitvon/internal/game"
)

func TestPurchaseDeductsCoins(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	store.AddCoins(400) // 500 total
	s := New(store)

	r, err := s.Purchase("ai-analyzer")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if r.CoinsSpent != 300 || r.Balance != 200 {
		t.Fatalf("receipt = %+v, want 300 spent / 200 balance", r)
	}
	if store.Snapshot().Player.Coins != 200 {
		t.Fatalf("coins = %d, want 200", store.Snapshot().Player.Coins)
	}
}

func TestPurchaseRejectsPoorPlayer(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	s := New(store)

	if _, err := s.Purchase("whale-skin"); err != ErrInsufficientCoins {
		t.Fatalf("expected ErrInsufficientCoins, got %v", err)
	}
	if store.Snapshot().Player.Coins != game.StartingCoins {
		t.Fatal("failed purchase must not spend coins")
	}
}

func TestPurchaseOnce(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	store.AddCoins(1000)
	s := New(store)

	if _, err := s.Purchase("hacker-skin"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if _, err := s.Purchase("hacker-skin"); err != ErrAlreadyOwned {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
	owned := s.Owned()
	if len(owned) != 1 || owned[0] != "hacker-skin" {
		t.Fatalf("owned = %v", owned)
	}
}

func TestCoinPackGrantsCoins(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	s := New(store)

	r, err := s.Purchase("coin-pack-small") // costs 50, grants 100
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if r.CoinsGained != 100 {
		t.Fatalf("coinsGained = %d, want 100", r.CoinsGained)
	}
	if got := store.Snapshot().Player.Coins; got != game.StartingCoins-50+100 {
		t.Fatalf("coins = %d, want %d", got, game.StartingCoins-50+100)
	}
}

func TestUnknownItem(t *testing.T) {
	s := New(game.NewStore(game.DefaultState(), nil))
	if _, err := s.Purchase("jetpack"); err != ErrUnknownItem {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

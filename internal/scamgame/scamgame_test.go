package scamgame

import (
	"testing"

	"nitvon/internal/game"
)

func TestCorrectAnswerPays(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	q := NewQuiz(store, 1)

	v, err := q.Answer("obvious-scam", true)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !v.Correct {
		t.Fatal("calling MoonRocket a scam is correct")
	}
	s := store.Snapshot()
	if s.Player.XP != correctXP {
		t.Fatalf("xp = %d, want %d", s.Player.XP, correctXP)
	}
	if s.Player.Coins != game.StartingCoins+correctCoins {
		t.Fatalf("coins = %d, want %d", s.Player.Coins, game.StartingCoins+correctCoins)
	}
}

func TestWrongAnswerConsolation(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	q := NewQuiz(store, 1)

	v, err := q.Answer("legit-defi", true)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if v.Correct {
		t.Fatal("SolidSwap is legit; calling it a scam is wrong")
	}
	s := store.Snapshot()
	if s.Player.XP != wrongXP {
		t.Fatalf("xp = %d, want %d", s.Player.XP, wrongXP)
	}
	if s.Player.Coins != game.StartingCoins {
		t.Fatalf("coins = %d, wrong answers pay no coins", s.Player.Coins)
	}
}

func TestUnknownProject(t *testing.T) {
	store := game.NewStore(game.DefaultState(), nil)
	q := NewQuiz(store, 1)
	if _, err := q.Answer("nope", true); err != ErrUnknownProject {
		t.Fatalf("expected ErrUnknownProject, got %v", err)
	}
}

func TestScamProjectsCarryRedFlags(t *testing.T) {
	for _, p := range projects {
		if p.IsScam && len(p.RedFlags) == 0 {
			t.Fatalf("scam project %q has no red flags to reveal", p.ID)
		}
		if !p.IsScam && len(p.RedFlags) != 0 {
			t.Fatalf("legit project %q should not list red flags", p.ID)
		}
	}
}

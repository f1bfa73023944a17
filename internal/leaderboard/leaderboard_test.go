package leaderboard

import (
	"testing"

	"nitvon/internal/game"
)

func TestStandingsIncludePlayer(t *testing.T) {
	player := game.Player{Name: "You", Rank: "Rookie Trader", Level: 1, Portfolio: 1000, XP: 0}
	rows := Standings(player)

	if len(rows) != len(rivals)+1 {
		t.Fatalf("standings size = %d, want %d", len(rows), len(rivals)+1)
	}
	found := false
	for _, r := range rows {
		if r.IsCurrentPlayer {
			found = true
			if r.Position != len(rows) {
				t.Fatalf("rookie should rank last, got position %d", r.Position)
			}
		}
	}
	if !found {
		t.Fatal("player missing from standings")
	}
}

func TestStandingsSortedByPortfolio(t *testing.T) {
	player := game.Player{Name: "You", Portfolio: 1_000_000}
	rows := Standings(player)
	for i := 1; i < len(rows); i++ {
		if rows[i].Portfolio > rows[i-1].Portfolio {
			t.Fatalf("standings not sorted at position %d", i+1)
		}
		if rows[i].Position != i+1 {
			t.Fatalf("position %d mislabeled as %d", i+1, rows[i].Position)
		}
	}
	// 1,000,000 sits above DiamondHands (950k) but below WhaleWatcher.
	if rows[2].Name != "You" {
		t.Fatalf("expected player at position 3, got %q", rows[2].Name)
	}
}

package game

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{xp: 0, want: 1},
		{xp: 99, want: 1},
		{xp: 100, want: 2},
		{xp: 250, want: 3},
		{xp: 999, want: 10},
		{xp: 1500, want: 16},
	}
	for _, tc := range tests {
		if got := Level(tc.xp); got != tc.want {
			t.Fatalf("Level(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestLevelNonDecreasing(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 2000; xp += 7 {
		level := Level(xp)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}

func TestRankForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Rookie Trader"},
		{2, "Street Trader"},
		{3, "Street Trader"},
		{4, "Market Analyst"},
		{5, "Market Analyst"},
		{6, "Pro Trader"},
		{7, "Pro Trader"},
		{8, "Whale"},
		{9, "Whale"},
		{10, "Legendary Trader"},
		{42, "Legendary Trader"},
	}
	for _, tc := range tests {
		if got := RankForLevel(tc.level); got != tc.want {
			t.Fatalf("RankForLevel(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestXPProgress(t *testing.T) {
	tests := []struct {
		xp    int
		level int
		want  float64
	}{
		{xp: 0, level: 1, want: 0},
		{xp: 50, level: 1, want: 50},
		{xp: 250, level: 3, want: 50},
		{xp: 399, level: 4, want: 99},
	}
	for _, tc := range tests {
		if got := XPProgress(tc.xp, tc.level); got != tc.want {
			t.Fatalf("XPProgress(%d, %d) = %v, want %v", tc.xp, tc.level, got, tc.want)
		}
	}
}

func TestNextLevelXP(t *testing.T) {
	if got := NextLevelXP(3); got != 300 {
		t.Fatalf("NextLevelXP(3) = %d, want 300", got)
	}
}

func TestSuccessRate(t *testing.T) {
	if got := SuccessRate(Player{}); got != 0 {
		t.Fatalf("expected 0%% with no trades, got %d", got)
	}
	p := Player{TotalTrades: 3, SuccessfulTrades: 2}
	if got := SuccessRate(p); got != 67 {
		t.Fatalf("SuccessRate = %d, want 67", got)
	}
}

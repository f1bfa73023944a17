package market

import (
	"testing"

	"nitvon/internal/game"
)

func TestCatalogSymbolsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Catalog() {
		if seen[c.Symbol] {
			t.Fatalf("duplicate symbol %q", c.Symbol)
		}
		if c.BasePrice <= 0 {
			t.Fatalf("%s base price must be positive", c.Symbol)
		}
		seen[c.Symbol] = true
	}
	if !seen["NITVON"] {
		t.Fatal("catalog must include the house coin")
	}
}

func TestTickKeepsPricesPositive(t *testing.T) {
	sim := NewSimulator("wild", 1, nil)
	for i := 0; i < 500; i++ {
		sim.Tick()
	}
	for _, q := range sim.Quotes() {
		if q.Price <= 0 {
			t.Fatalf("%s price went non-positive: %v", q.Symbol, q.Price)
		}
	}
}

func TestTickDeterministicWithSeed(t *testing.T) {
	a := NewSimulator("normal", 42, nil)
	b := NewSimulator("normal", 42, nil)
	for i := 0; i < 50; i++ {
		a.Tick()
		b.Tick()
	}
	qa, qb := a.Quotes(), b.Quotes()
	for i := range qa {
		if qa[i].Price != qb[i].Price {
			t.Fatalf("seeded sims diverged on %s: %v vs %v", qa[i].Symbol, qa[i].Price, qb[i].Price)
		}
	}
}

func TestHistoryBounded(t *testing.T) {
	sim := NewSimulator("normal", 7, nil)
	for i := 0; i < historyLimit+50; i++ {
		sim.Tick()
	}
	hist, err := sim.History("BTC")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != historyLimit {
		t.Fatalf("history length = %d, want %d", len(hist), historyLimit)
	}
}

func TestUnknownSymbol(t *testing.T) {
	sim := NewSimulator("normal", 7, nil)
	if _, err := sim.Quote("DOGE"); err != ErrUnknownSymbol {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	if _, err := sim.History("DOGE"); err != ErrUnknownSymbol {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestDeskRecordsTrade(t *testing.T) {
	sim := NewSimulator("normal", 3, nil)
	store := game.NewStore(game.DefaultState(), nil)
	desk := NewDesk(sim, store, 3)

	out, err := desk.Execute("BTC", game.TradeBuy, 100)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	s := store.Snapshot()
	if s.Player.TotalTrades != 1 {
		t.Fatalf("totalTrades = %d, want 1", s.Player.TotalTrades)
	}
	if len(s.TradingHistory) != 1 || s.TradingHistory[0].ID != out.Trade.ID {
		t.Fatal("trade must land in history")
	}
	wantPortfolio := game.StartingPortfolio + out.Profit
	if s.Player.Portfolio != wantPortfolio {
		t.Fatalf("portfolio = %v, want %v", s.Player.Portfolio, wantPortfolio)
	}
	if out.XPGained < 5 {
		t.Fatalf("xp gained = %d, want at least 5", out.XPGained)
	}
	if s.Player.XP != out.XPGained {
		t.Fatalf("store xp = %d, want %d", s.Player.XP, out.XPGained)
	}
}

func TestDeskRejectsBadInput(t *testing.T) {
	sim := NewSimulator("normal", 3, nil)
	store := game.NewStore(game.DefaultState(), nil)
	desk := NewDesk(sim, store, 3)

	if _, err := desk.Execute("BTC", "hodl", 100); err == nil {
		t.Fatal("expected invalid trade type error")
	}
	if _, err := desk.Execute("BTC", game.TradeBuy, 0); err == nil {
		t.Fatal("expected amount error")
	}
	if _, err := desk.Execute("DOGE", game.TradeBuy, 100); err == nil {
		t.Fatal("expected unknown symbol error")
	}
	if store.Snapshot().Player.TotalTrades != 0 {
		t.Fatal("rejected trades must not touch the store")
	}
}

func TestNewsRotation(t *testing.T) {
	tk := NewTicker(1)
	first := tk.Next()
	if first.Text == "" {
		t.Fatal("empty headline")
	}
	seen := map[string]bool{first.Text: true}
	for i := 0; i < len(headlines)-1; i++ {
		seen[tk.Next().Text] = true
	}
	if len(seen) != len(headlines) {
		t.Fatalf("rotation covered %d headlines, want %d", len(seen), len(headlines))
	}
}

package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"nitvon/internal/game"
)

func openTest(t *testing.T) *Snapshots {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	s := openTest(t)
	got := s.Load(context.Background())
	want := game.DefaultState()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fresh load = %+v, want defaults", got)
	}
}

func TestRoundTrip(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	st := game.NewStore(game.DefaultState(), nil)
	st.StartGame()
	st.AddXP(250)
	st.AddCoins(900)
	st.AddTrade(game.TradeInput{Symbol: "BTC", Type: game.TradeBuy, Amount: 100, Price: 45000, Profit: 20})
	state := st.Snapshot()

	if err := s.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := s.Load(ctx)

	if !reflect.DeepEqual(got.Player, state.Player) {
		t.Fatalf("player round trip mismatch:\n got %+v\nwant %+v", got.Player, state.Player)
	}
	if !reflect.DeepEqual(got.Settings, state.Settings) {
		t.Fatal("settings round trip mismatch")
	}
	if !reflect.DeepEqual(got.Stats, state.Stats) {
		t.Fatal("stats round trip mismatch")
	}
	if len(got.TradingHistory) != 1 || got.TradingHistory[0].ID != state.TradingHistory[0].ID {
		t.Fatal("history round trip mismatch")
	}
	for i, a := range got.Achievements {
		if a.Unlocked != state.Achievements[i].Unlocked {
			t.Fatalf("achievement %q unlocked flag lost", a.ID)
		}
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	first := game.DefaultState()
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := first
	second.Player.XP = 777
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := s.Load(ctx); got.Player.XP != 777 {
		t.Fatalf("loaded xp = %d, want 777", got.Player.XP)
	}
}

func TestCorruptSnapshotFallsBack(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, body, saved_at) VALUES (?, ?, datetime('now'))
	`, SnapshotKey, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	got := s.Load(ctx)
	if !reflect.DeepEqual(got, game.DefaultState()) {
		t.Fatal("corrupt snapshot must fall back to defaults")
	}
}

func TestVersionMismatchFallsBack(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, body, saved_at) VALUES (?, ?, datetime('now'))
	`, SnapshotKey, []byte(`{"version": 99, "state": {}}`)); err != nil {
		t.Fatalf("seed future row: %v", err)
	}

	got := s.Load(ctx)
	if !reflect.DeepEqual(got, game.DefaultState()) {
		t.Fatal("unknown snapshot version must fall back to defaults")
	}
}

func TestAttachPersistsEveryMutation(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	st := game.NewStore(s.Load(ctx), nil)
	s.Attach(st)
	st.AddCoins(42)

	if got := s.Load(ctx); got.Player.Coins != game.StartingCoins+42 {
		t.Fatalf("persisted coins = %d, want %d", got.Player.Coins, game.StartingCoins+42)
	}
}

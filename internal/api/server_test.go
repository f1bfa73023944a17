package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nitvon/internal/config"
	"nitvon/internal/events"
	"nitvon/internal/game"
	"nitvon/internal/market"
	"nitvon/internal/scamgame"
	"nitvon/internal/shop"
)

func newTestServer(t *testing.T) (*Server, *game.Store) {
	t.Helper()
	store := game.NewStore(game.DefaultState(), nil)
	sim := market.NewSimulator("calm", 1, nil)
	srv := New(config.APIConfig{}, nil, Deps{
		Store:  store,
		Sim:    sim,
		Desk:   market.NewDesk(sim, store, 1),
		News:   market.NewTicker(1),
		Picker: events.NewPicker(1),
		Quiz:   scamgame.NewQuiz(store, 1),
		Shop:   shop.New(store),
	})
	return srv, store
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestStateRoundTrip(t *testing.T) {
	srv, store := newTestServer(t)
	store.AddXP(250)

	rec := doJSON(t, srv, http.MethodGet, "/v1/state", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var state game.GameState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Player.Level != 3 || state.Player.Rank != "Street Trader" {
		t.Fatalf("state = level %d rank %q", state.Player.Level, state.Player.Rank)
	}
}

func TestAddXPEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/xp", map[string]any{"amount": 120})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if store.Snapshot().Player.Level != 2 {
		t.Fatalf("level = %d, want 2", store.Snapshot().Player.Level)
	}
}

func TestSetScreenRejectsUnknown(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/screen", map[string]any{"screen": "casino"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAddTradeEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/trades", map[string]any{
		"symbol": "BTC", "type": "buy", "amount": 100, "price": 45000, "profit": 20,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	s := store.Snapshot()
	if s.Player.TotalTrades != 1 || s.Player.SuccessfulTrades != 1 {
		t.Fatalf("counters = %d/%d, want 1/1", s.Player.SuccessfulTrades, s.Player.TotalTrades)
	}
}

func TestExecuteTradeRejectsBadType(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/trades/execute", map[string]any{
		"symbol": "BTC", "type": "hodl", "amount": 100,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUnknownSymbolIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/v1/market/prices/DOGE", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestShopBuyInsufficientCoins(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/shop/items/whale-skin/buy", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestEventChooseApplies(t *testing.T) {
	srv, store := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/events/exchange-hack/choose", map[string]any{
		"choice_id": "buy-dip",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if store.Snapshot().Player.XP != 25 {
		t.Fatalf("xp = %d, want 25", store.Snapshot().Player.XP)
	}
}

func TestResetEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	store.AddXP(999)
	rec := doJSON(t, srv, http.MethodPost, "/v1/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if store.Snapshot().Player.XP != 0 {
		t.Fatal("reset must zero the player")
	}
}

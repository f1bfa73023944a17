package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nitvon/internal/config"
	"nitvon/internal/events"
	"nitvon/internal/game"
	"nitvon/internal/leaderboard"
	"nitvon/internal/market"
	"nitvon/internal/scamgame"
	"nitvon/internal/shop"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes the game state store and its collaborator screens over
// HTTP for a browser frontend. All mutation goes through store actions;
// handlers never reach into state fields.
type Server struct {
	cfg    config.APIConfig
	log    *slog.Logger
	store  *game.Store
	sim    *market.Simulator
	desk   *market.Desk
	news   *market.Ticker
	picker *events.Picker
	quiz   *scamgame.Quiz
	shop   *shop.Shop
	mux    *chi.Mux
}

type Deps struct {
	Store  *game.Store
	Sim    *market.Simulator
	Desk   *market.Desk
	News   *market.Ticker
	Picker *events.Picker
	Quiz   *scamgame.Quiz
	Shop   *shop.Shop
}

func New(cfg config.APIConfig, logger *slog.Logger, deps Deps) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		log:    logger,
		store:  deps.Store,
		sim:    deps.Sim,
		desk:   deps.Desk,
		news:   deps.News,
		picker: deps.Picker,
		quiz:   deps.Quiz,
		shop:   deps.Shop,
		mux:    chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/start", s.handleStart)
		r.Post("/screen", s.handleSetScreen)
		r.Post("/xp", s.handleAddXP)
		r.Post("/coins", s.handleAddCoins)
		r.Post("/trades", s.handleAddTrade)
		r.Post("/trades/execute", s.handleExecuteTrade)
		r.Post("/levelup-modal", s.handleLevelUpModal)
		r.Patch("/player", s.handlePatchPlayer)
		r.Patch("/settings", s.handlePatchSettings)
		r.Patch("/stats", s.handlePatchStats)
		r.Post("/achievements/{id}/unlock", s.handleUnlockAchievement)
		r.Post("/reset", s.handleReset)

		r.Get("/market/prices", s.handlePrices)
		r.Get("/market/prices/{symbol}", s.handlePrice)
		r.Get("/market/prices/{symbol}/history", s.handlePriceHistory)
		r.Get("/market/news", s.handleNews)

		r.Get("/events/next", s.handleNextEvent)
		r.Post("/events/{id}/choose", s.handleChooseEvent)

		r.Get("/scam/round", s.handleScamRound)
		r.Post("/scam/{id}/answer", s.handleScamAnswer)

		r.Get("/shop/items", s.handleShopItems)
		r.Post("/shop/items/{id}/buy", s.handleShopBuy)

		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleStart(w http.ResponseWriter, _ *http.Request) {
	s.store.StartGame()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

var validScreens = map[game.Screen]bool{
	game.ScreenMenu:         true,
	game.ScreenIntro:        true,
	game.ScreenDashboard:    true,
	game.ScreenEvent:        true,
	game.ScreenMinigame:     true,
	game.ScreenLeaderboard:  true,
	game.ScreenShop:         true,
	game.ScreenSettings:     true,
	game.ScreenAchievements: true,
}

func (s *Server) handleSetScreen(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Screen game.Screen `json:"screen"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validScreens[in.Screen] {
		writeError(w, http.StatusBadRequest, "unknown screen")
		return
	}
	s.store.SetScreen(in.Screen)
	writeJSON(w, http.StatusOK, map[string]any{"current_screen": in.Screen})
}

func (s *Server) handleAddXP(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount int `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.AddXP(in.Amount)
	writeJSON(w, http.StatusOK, s.store.Snapshot().Player)
}

func (s *Server) handleAddCoins(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount int `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.AddCoins(in.Amount)
	writeJSON(w, http.StatusOK, s.store.Snapshot().Player)
}

func (s *Server) handleAddTrade(w http.ResponseWriter, r *http.Request) {
	var in game.TradeInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	trade := s.store.AddTrade(in)
	writeJSON(w, http.StatusCreated, trade)
}

func (s *Server) handleExecuteTrade(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Symbol string         `json:"symbol"`
		Type   game.TradeType `json:"type"`
		Amount float64        `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.Type != game.TradeBuy && in.Type != game.TradeSell {
		writeError(w, http.StatusBadRequest, "type must be buy or sell")
		return
	}
	if in.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	out, err := s.desk.Execute(in.Symbol, in.Type, in.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLevelUpModal(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Show bool `json:"show"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.SetShowLevelUpModal(in.Show)
	writeJSON(w, http.StatusOK, map[string]any{"show_level_up_modal": in.Show})
}

func (s *Server) handlePatchPlayer(w http.ResponseWriter, r *http.Request) {
	var in game.PlayerPatch
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.UpdatePlayer(in)
	writeJSON(w, http.StatusOK, s.store.Snapshot().Player)
}

func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	var in game.SettingsPatch
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.UpdateSettings(in)
	writeJSON(w, http.StatusOK, s.store.Snapshot().Settings)
}

func (s *Server) handlePatchStats(w http.ResponseWriter, r *http.Request) {
	var in game.StatsPatch
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.UpdateGameStats(in)
	writeJSON(w, http.StatusOK, s.store.Snapshot().Stats)
}

func (s *Server) handleUnlockAchievement(w http.ResponseWriter, r *http.Request) {
	s.store.UnlockAchievement(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, s.store.Snapshot().Achievements)
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.store.ResetGame()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handlePrices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"quotes": s.sim.Quotes()})
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	quote, err := s.sim.Quote(strings.ToUpper(chi.URLParam(r, "symbol")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (s *Server) handlePriceHistory(w http.ResponseWriter, r *http.Request) {
	hist, err := s.sim.History(strings.ToUpper(chi.URLParam(r, "symbol")))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"series": hist})
}

func (s *Server) handleNews(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"headlines": s.news.Latest(5)})
}

func (s *Server) handleNextEvent(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.picker.Next())
}

func (s *Server) handleChooseEvent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ChoiceID string `json:"choice_id"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := events.Resolve(s.store, chi.URLParam(r, "id"), in.ChoiceID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleScamRound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.quiz.Next())
}

func (s *Server) handleScamAnswer(w http.ResponseWriter, r *http.Request) {
	var in struct {
		IsScam bool `json:"is_scam"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	verdict, err := s.quiz.Answer(chi.URLParam(r, "id"), in.IsScam)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

func (s *Server) handleShopItems(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items": shop.Items(),
		"owned": s.shop.Owned(),
	})
}

func (s *Server) handleShopBuy(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.shop.Purchase(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, _ *http.Request) {
	rows := leaderboard.Standings(s.store.Snapshot().Player)
	writeJSON(w, http.StatusOK, map[string]any{"rows": rows})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, market.ErrUnknownSymbol),
		errors.Is(err, events.ErrUnknownEvent),
		errors.Is(err, events.ErrUnknownChoice),
		errors.Is(err, scamgame.ErrUnknownProject),
		errors.Is(err, shop.ErrUnknownItem):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shop.ErrAlreadyOwned):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, shop.ErrInsufficientCoins):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}

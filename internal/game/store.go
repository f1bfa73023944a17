package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the sole owner of mutable game state. Every read and write of
// player progress, achievements, history, settings and navigation goes
// through its methods; views and adapters never touch fields directly.
//
// Mutations run to completion under one lock, re-derive level/rank and
// achievement unlocks, then notify subscribers synchronously with a
// detached snapshot. Subscribers must not call back into the Store.
type Store struct {
	mu    sync.Mutex
	state GameState
	log   *slog.Logger
	subs  []func(GameState)
}

func NewStore(initial GameState, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{state: normalize(initial), log: logger}
}

// normalize repairs a restored snapshot so downstream code never sees
// nil slices or a stale level/rank pair.
func normalize(s GameState) GameState {
	if s.Player.Achievements == nil {
		s.Player.Achievements = []string{}
	}
	if s.TradingHistory == nil {
		s.TradingHistory = []Trade{}
	}
	if len(s.Achievements) == 0 {
		s.Achievements = defaultAchievements()
	}
	s.Player.Level = Level(s.Player.XP)
	s.Player.Rank = RankForLevel(s.Player.Level)
	if s.PreviousLevel == 0 {
		s.PreviousLevel = s.Player.Level
	}
	if s.CurrentScreen == "" {
		s.CurrentScreen = ScreenMenu
	}
	return s
}

// Subscribe registers an observer called after every mutation with a
// snapshot of the new state.
func (st *Store) Subscribe(fn func(GameState)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.subs = append(st.subs, fn)
}

// Snapshot returns a deep copy of the current state.
func (st *Store) Snapshot() GameState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.clone()
}

func (st *Store) notifyLocked() {
	snap := st.state.clone()
	for _, fn := range st.subs {
		fn(snap)
	}
}

// SetScreen moves navigation to the given screen. Player data is untouched.
func (st *Store) SetScreen(screen Screen) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.CurrentScreen = screen
	st.notifyLocked()
}

// StartGame flags the session as started, jumps to the intro screen and
// counts one more played game. Repeated calls keep incrementing the counter.
func (st *Store) StartGame() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.IsGameStarted = true
	st.state.CurrentScreen = ScreenIntro
	st.state.Stats.GamesPlayed++
	st.notifyLocked()
}

// UpdatePlayer merges the patch into the player and raises the portfolio
// watermark if the merged portfolio exceeds it. Level and rank are not
// recomputed here; XP changes go through AddXP.
func (st *Store) UpdatePlayer(patch PlayerPatch) {
	st.mu.Lock()
	defer st.mu.Unlock()

	p := &st.state.Player
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Portfolio != nil {
		p.Portfolio = *patch.Portfolio
	}
	if patch.Coins != nil {
		p.Coins = *patch.Coins
	}
	if patch.TotalTrades != nil {
		p.TotalTrades = *patch.TotalTrades
	}
	if patch.SuccessfulTrades != nil {
		p.SuccessfulTrades = *patch.SuccessfulTrades
	}
	if p.Portfolio > st.state.Stats.HighestPortfolio {
		st.state.Stats.HighestPortfolio = p.Portfolio
	}

	st.evaluateAchievementsLocked()
	st.notifyLocked()
}

// AddXP credits experience and re-derives level and rank in the same
// action. A level-up raises the modal flag and records the level the
// player is leaving.
func (st *Store) AddXP(amount int) {
	if amount < 0 {
		amount = 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	p := &st.state.Player
	oldLevel := p.Level
	p.XP += amount
	p.Level = Level(p.XP)
	p.Rank = RankForLevel(p.Level)

	if p.Level > oldLevel {
		st.state.ShowLevelUpModal = true
		st.state.PreviousLevel = oldLevel
		st.log.Info("level up", "from", oldLevel, "to", p.Level, "rank", p.Rank)
	}

	st.evaluateAchievementsLocked()
	st.notifyLocked()
}

// AddCoins credits in-game currency. Spending goes through UpdatePlayer,
// so deltas here are additive by convention.
func (st *Store) AddCoins(amount int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.Player.Coins += amount
	st.evaluateAchievementsLocked()
	st.notifyLocked()
}

// SetShowLevelUpModal toggles the level-up modal flag only.
func (st *Store) SetShowLevelUpModal(show bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.ShowLevelUpModal = show
	st.notifyLocked()
}

// AddTrade records a trade: assigns id and timestamp, prepends it to the
// bounded history, updates counters, streaks and watermarks. A trade is
// successful iff its profit is positive; a missing profit counts as zero.
func (st *Store) AddTrade(in TradeInput) Trade {
	st.mu.Lock()
	defer st.mu.Unlock()

	trade := Trade{
		ID:        uuid.NewString(),
		Symbol:    in.Symbol,
		Type:      in.Type,
		Amount:    in.Amount,
		Price:     in.Price,
		Timestamp: time.Now().UTC(),
		Profit:    in.Profit,
	}

	history := append([]Trade{trade}, st.state.TradingHistory...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	st.state.TradingHistory = history

	successful := in.Profit > 0
	st.state.Player.TotalTrades++
	if successful {
		st.state.Player.SuccessfulTrades++
		st.state.Stats.CurrentStreak++
	} else {
		st.state.Stats.CurrentStreak = 0
	}
	if st.state.Stats.CurrentStreak > st.state.Stats.BestTradingStreak {
		st.state.Stats.BestTradingStreak = st.state.Stats.CurrentStreak
	}

	st.evaluateAchievementsLocked()
	st.notifyLocked()
	return trade
}

// UnlockAchievement marks the named achievement unlocked, once. An
// unknown or already-unlocked id is a no-op.
func (st *Store) UnlockAchievement(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.unlockLocked(id) {
		st.notifyLocked()
	}
}

func (st *Store) unlockLocked(id string) bool {
	for i := range st.state.Achievements {
		a := &st.state.Achievements[i]
		if a.ID != id {
			continue
		}
		if a.Unlocked {
			return false
		}
		now := time.Now().UTC()
		a.Unlocked = true
		a.UnlockedAt = &now
		st.state.Player.Achievements = append(st.state.Player.Achievements, id)
		st.log.Info("achievement unlocked", "id", id, "name", a.Name)
		return true
	}
	return false
}

// evaluateAchievementsLocked runs every unlock predicate against the
// current state. New achievements only need a rule entry; no action has
// per-achievement logic.
func (st *Store) evaluateAchievementsLocked() {
	for _, rule := range achievementRules {
		if rule.Condition(st.state) {
			st.unlockLocked(rule.ID)
		}
	}
}

// UpdateSettings merges the patch into the settings record.
func (st *Store) UpdateSettings(patch SettingsPatch) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := &st.state.Settings
	if patch.SoundEnabled != nil {
		s.SoundEnabled = *patch.SoundEnabled
	}
	if patch.MusicEnabled != nil {
		s.MusicEnabled = *patch.MusicEnabled
	}
	if patch.Notifications != nil {
		s.Notifications = *patch.Notifications
	}
	if patch.Difficulty != nil {
		s.Difficulty = *patch.Difficulty
	}
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	st.notifyLocked()
}

// UpdateGameStats merges the patch into the stats record directly,
// without watermark logic. Callers using this path are responsible for
// not regressing watermarks.
func (st *Store) UpdateGameStats(patch StatsPatch) {
	st.mu.Lock()
	defer st.mu.Unlock()

	g := &st.state.Stats
	if patch.TotalPlayTime != nil {
		g.TotalPlayTime = *patch.TotalPlayTime
	}
	if patch.GamesPlayed != nil {
		g.GamesPlayed = *patch.GamesPlayed
	}
	if patch.HighestPortfolio != nil {
		g.HighestPortfolio = *patch.HighestPortfolio
	}
	if patch.BestTradingStreak != nil {
		g.BestTradingStreak = *patch.BestTradingStreak
	}
	if patch.CurrentStreak != nil {
		g.CurrentStreak = *patch.CurrentStreak
	}
	st.notifyLocked()
}

// ResetGame restores everything except settings to the fixed defaults.
func (st *Store) ResetGame() {
	st.mu.Lock()
	defer st.mu.Unlock()

	settings := st.state.Settings
	st.state = DefaultState()
	st.state.Settings = settings
	st.log.Info("game reset")
	st.notifyLocked()
}

package game

import "time"

type Screen string

const (
	ScreenMenu         Screen = "menu"
	ScreenIntro        Screen = "intro"
	ScreenDashboard    Screen = "dashboard"
	ScreenEvent        Screen = "event"
	ScreenMinigame     Screen = "minigame"
	ScreenLeaderboard  Screen = "leaderboard"
	ScreenShop         Screen = "shop"
	ScreenSettings     Screen = "settings"
	ScreenAchievements Screen = "achievements"
)

type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

type Player struct {
	Name             string   `json:"name"`
	Level            int      `json:"level"`
	XP               int      `json:"xp"`
	Rank             string   `json:"rank"`
	Portfolio        float64  `json:"portfolio"`
	Coins            int      `json:"coins"`
	TotalTrades      int      `json:"total_trades"`
	SuccessfulTrades int      `json:"successful_trades"`
	Achievements     []string `json:"achievements"`
}

type Trade struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Type      TradeType `json:"type"`
	Amount    float64   `json:"amount"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
	Profit    float64   `json:"profit"`
}

// TradeInput is a trade as submitted by the trading flow, before the
// store assigns an id and timestamp.
type TradeInput struct {
	Symbol string    `json:"symbol"`
	Type   TradeType `json:"type"`
	Amount float64   `json:"amount"`
	Price  float64   `json:"price"`
	Profit float64   `json:"profit"`
}

type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type GameSettings struct {
	SoundEnabled  bool   `json:"sound_enabled"`
	MusicEnabled  bool   `json:"music_enabled"`
	Notifications bool   `json:"notifications"`
	Difficulty    string `json:"difficulty"`
	Theme         string `json:"theme"`
}

type GameStats struct {
	TotalPlayTime     int     `json:"total_play_time"`
	GamesPlayed       int     `json:"games_played"`
	HighestPortfolio  float64 `json:"highest_portfolio"`
	BestTradingStreak int     `json:"best_trading_streak"`
	CurrentStreak     int     `json:"current_streak"`
}

// GameState is the full snapshot owned by the Store. Everything in it
// survives a reload via the storage snapshot slot.
type GameState struct {
	CurrentScreen    Screen        `json:"current_screen"`
	Player           Player        `json:"player"`
	IsGameStarted    bool          `json:"is_game_started"`
	ShowLevelUpModal bool          `json:"show_level_up_modal"`
	PreviousLevel    int           `json:"previous_level"`
	TradingHistory   []Trade       `json:"trading_history"`
	Achievements     []Achievement `json:"achievements"`
	Settings         GameSettings  `json:"settings"`
	Stats            GameStats     `json:"game_stats"`
}

// PlayerPatch is a partial player update. Nil fields are left untouched.
// XP is deliberately absent: level and rank are recomputed only by AddXP.
type PlayerPatch struct {
	Name             *string  `json:"name,omitempty"`
	Portfolio        *float64 `json:"portfolio,omitempty"`
	Coins            *int     `json:"coins,omitempty"`
	TotalTrades      *int     `json:"total_trades,omitempty"`
	SuccessfulTrades *int     `json:"successful_trades,omitempty"`
}

type SettingsPatch struct {
	SoundEnabled  *bool   `json:"sound_enabled,omitempty"`
	MusicEnabled  *bool   `json:"music_enabled,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	Difficulty    *string `json:"difficulty,omitempty"`
	Theme         *string `json:"theme,omitempty"`
}

type StatsPatch struct {
	TotalPlayTime     *int     `json:"total_play_time,omitempty"`
	GamesPlayed       *int     `json:"games_played,omitempty"`
	HighestPortfolio  *float64 `json:"highest_portfolio,omitempty"`
	BestTradingStreak *int     `json:"best_trading_streak,omitempty"`
	CurrentStreak     *int     `json:"current_streak,omitempty"`
}

func (s GameState) clone() GameState {
	out := s
	out.Player.Achievements = append([]string(nil), s.Player.Achievements...)
	out.TradingHistory = append([]Trade(nil), s.TradingHistory...)
	out.Achievements = append([]Achievement(nil), s.Achievements...)
	for i, a := range s.Achievements {
		if a.UnlockedAt != nil {
			t := *a.UnlockedAt
			out.Achievements[i].UnlockedAt = &t
		}
	}
	return out
}

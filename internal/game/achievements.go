package game

const (
	AchievementFirstTrade    = "first-trade"
	AchievementLevel5        = "level-5"
	AchievementWhaleStatus   = "whale-status"
	AchievementTradingStreak = "trading-streak"
	AchievementCoinCollector = "coin-collector"
)

// achievementRule ties an achievement id to the predicate that unlocks it.
// Predicates are pure and monotonic over normal play: once a condition
// holds, replaying it never re-fires the unlock because unlocking is
// one-way.
type achievementRule struct {
	ID        string
	Condition func(GameState) bool
}

var achievementRules = []achievementRule{
	{
		ID:        AchievementFirstTrade,
		Condition: func(s GameState) bool { return s.Player.TotalTrades >= 1 },
	},
	{
		ID:        AchievementLevel5,
		Condition: func(s GameState) bool { return s.Player.Level >= 5 },
	},
	{
		ID:        AchievementWhaleStatus,
		Condition: func(s GameState) bool { return s.Player.Portfolio >= 1_000_000 },
	},
	{
		ID:        AchievementTradingStreak,
		Condition: func(s GameState) bool { return s.Stats.CurrentStreak >= 10 },
	},
	{
		ID:        AchievementCoinCollector,
		Condition: func(s GameState) bool { return s.Player.Coins >= 1000 },
	},
}

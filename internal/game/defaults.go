package game

const (
	StartingPortfolio = float64(1000)
	StartingCoins     = 100

	// HistoryLimit caps the trading history; oldest trades are evicted.
	HistoryLimit = 100
)

func defaultPlayer() Player {
	return Player{
		Name:         "Rookie Trader",
		Level:        1,
		XP:           0,
		Rank:         "Rookie Trader",
		Portfolio:    StartingPortfolio,
		Coins:        StartingCoins,
		Achievements: []string{},
	}
}

func defaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          AchievementFirstTrade,
			Name:        "First Trade",
			Description: "Complete your first trade",
			Icon:        "🎯",
		},
		{
			ID:          AchievementLevel5,
			Name:        "Rising Star",
			Description: "Reach level 5",
			Icon:        "⭐",
		},
		{
			ID:          AchievementWhaleStatus,
			Name:        "Whale Status",
			Description: "Accumulate 1,000,000 in portfolio value",
			Icon:        "🐋",
		},
		{
			ID:          AchievementTradingStreak,
			Name:        "Hot Streak",
			Description: "Make 10 successful trades in a row",
			Icon:        "🔥",
		},
		{
			ID:          AchievementCoinCollector,
			Name:        "Coin Collector",
			Description: "Collect 1000 coins",
			Icon:        "💰",
		},
	}
}

func defaultSettings() GameSettings {
	return GameSettings{
		SoundEnabled:  true,
		MusicEnabled:  true,
		Notifications: true,
		Difficulty:    "medium",
		Theme:         "dark",
	}
}

func defaultStats() GameStats {
	return GameStats{HighestPortfolio: StartingPortfolio}
}

// DefaultState is the fixed state a fresh installation starts from.
func DefaultState() GameState {
	return GameState{
		CurrentScreen:  ScreenMenu,
		Player:         defaultPlayer(),
		PreviousLevel:  1,
		TradingHistory: []Trade{},
		Achievements:   defaultAchievements(),
		Settings:       defaultSettings(),
		Stats:          defaultStats(),
	}
}

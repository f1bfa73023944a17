package game

import "math"

// XPPerLevel is the size of every level's XP band.
const XPPerLevel = 100

// Level derives the player level from cumulative XP.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// RankForLevel maps a level to its display title. Levels satisfy the
// highest threshold they reach.
func RankForLevel(level int) string {
	switch {
	case level >= 10:
		return "Legendary Trader"
	case level >= 8:
		return "Whale"
	case level >= 6:
		return "Pro Trader"
	case level >= 4:
		return "Market Analyst"
	case level >= 2:
		return "Street Trader"
	default:
		return "Rookie Trader"
	}
}

// NextLevelXP is the cumulative XP at which the given level ends.
func NextLevelXP(level int) int {
	return level * XPPerLevel
}

// XPProgress reports percent progress through the current level's band.
func XPProgress(xp, level int) float64 {
	floor := (level - 1) * XPPerLevel
	ceil := level * XPPerLevel
	return float64(xp-floor) / float64(ceil-floor) * 100
}

// SuccessRate reports the player's successful-trade percentage, rounded.
func SuccessRate(p Player) int {
	if p.TotalTrades == 0 {
		return 0
	}
	return int(math.Round(float64(p.SuccessfulTrades) / float64(p.TotalTrades) * 100))
}

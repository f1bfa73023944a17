// Package leaderboard builds the mock standings screen: a fixed cast of
// rival traders merged with the live player, ranked by portfolio value.
// There is no multiplayer backend; rivals never change.
package leaderboard

import (
	"sort"

	"nitvon/internal/game"
)

type Entry struct {
	Position        int     `json:"position"`
	Name            string  `json:"name"`
	Rank            string  `json:"rank"`
	Level           int     `json:"level"`
	Portfolio       float64 `json:"portfolio"`
	XP              int     `json:"xp"`
	IsCurrentPlayer bool    `json:"is_current_player,omitempty"`
}

var rivals = []Entry{
	{Name: "CryptoKing", Rank: "Legendary Trader", Level: 15, Portfolio: 2_500_000, XP: 1500},
	{Name: "WhaleWatcher", Rank: "Whale", Level: 12, Portfolio: 1_800_000, XP: 1200},
	{Name: "DiamondHands", Rank: "Pro Trader", Level: 10, Portfolio: 950_000, XP: 1000},
	{Name: "MoonShot", Rank: "Pro Trader", Level: 9, Portfolio: 750_000, XP: 900},
	{Name: "HODLer", Rank: "Market Analyst", Level: 7, Portfolio: 500_000, XP: 700},
}

// Standings merges the player into the rival list and ranks everyone by
// portfolio, highest first.
func Standings(player game.Player) []Entry {
	out := append([]Entry(nil), rivals...)
	out = append(out, Entry{
		Name:            player.Name,
		Rank:            player.Rank,
		Level:           player.Level,
		Portfolio:       player.Portfolio,
		XP:              player.XP,
		IsCurrentPlayer: true,
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Portfolio > out[j].Portfolio
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

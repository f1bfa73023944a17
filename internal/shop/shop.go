// Package shop sells cosmetic skins, tools and coin packs for in-game
// coins. Spending goes through the store's player patch path; coin packs
// grant their coins back through AddCoins.
package shop

import (
	"errors"
	"sync"

	"nitvon/internal/game"
)

var (
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrInsufficientCoins = errors.New("not enough coins")
)

type Category string

const (
	CategorySkins    Category = "skins"
	CategoryTools    Category = "tools"
	CategoryCurrency Category = "currency"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    Category `json:"category"`
	Rarity      Rarity   `json:"rarity"`
	GrantCoins  int      `json:"grant_coins,omitempty"`
}

var items = []Item{
	{
		ID:          "hacker-skin",
		Name:        "Hacker Nitvon",
		Description: "Cyberpunk-themed skin with neon green accents and digital effects",
		Price:       500,
		Category:    CategorySkins,
		Rarity:      RarityEpic,
	},
	{
		ID:          "whale-skin",
		Name:        "Whale Nitvon",
		Description: "Luxurious golden suit for the ultimate crypto whale experience",
		Price:       1000,
		Category:    CategorySkins,
		Rarity:      RarityLegendary,
	},
	{
		ID:          "ai-analyzer",
		Name:        "AI Market Analyzer",
		Description: "Advanced AI tool that provides market predictions and trading signals",
		Price:       300,
		Category:    CategoryTools,
		Rarity:      RarityRare,
	},
	{
		ID:          "insider-scanner",
		Name:        "Insider News Scanner",
		Description: "Get exclusive market news 30 seconds before everyone else",
		Price:       200,
		Category:    CategoryTools,
		Rarity:      RarityRare,
	},
	{
		ID:          "coin-pack-small",
		Name:        "Small Coin Pack",
		Description: "100 coins to boost your trading power",
		Price:       50,
		Category:    CategoryCurrency,
		Rarity:      RarityCommon,
		GrantCoins:  100,
	},
	{
		ID:          "coin-pack-large",
		Name:        "Large Coin Pack",
		Description: "500 coins for serious traders",
		Price:       200,
		Category:    CategoryCurrency,
		Rarity:      RarityRare,
		GrantCoins:  500,
	},
}

// Items returns the fixed catalog.
func Items() []Item {
	return items
}

// Find returns the item with the given id.
func Find(id string) (Item, error) {
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrUnknownItem
}

// Shop tracks purchases for one play session. Ownership is
// presentation-local, matching the original game; only the coin balance
// lives in the game state.
type Shop struct {
	mu    sync.Mutex
	store *game.Store
	owned map[string]bool
}

func New(store *game.Store) *Shop {
	return &Shop{store: store, owned: make(map[string]bool)}
}

type Receipt struct {
	Item        Item `json:"item"`
	CoinsSpent  int  `json:"coins_spent"`
	CoinsGained int  `json:"coins_gained"`
	Balance     int  `json:"balance"`
}

// Purchase buys an item once: checks the coin balance, deducts the
// price, and for coin packs grants the pack's coins.
func (s *Shop) Purchase(id string) (Receipt, error) {
	item, err := Find(id)
	if err != nil {
		return Receipt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owned[id] {
		return Receipt{}, ErrAlreadyOwned
	}

	coins := s.store.Snapshot().Player.Coins
	if coins < item.Price {
		return Receipt{}, ErrInsufficientCoins
	}

	remaining := coins - item.Price
	s.store.UpdatePlayer(game.PlayerPatch{Coins: &remaining})
	s.owned[id] = true

	if item.GrantCoins > 0 {
		s.store.AddCoins(item.GrantCoins)
	}

	return Receipt{
		Item:        item,
		CoinsSpent:  item.Price,
		CoinsGained: item.GrantCoins,
		Balance:     s.store.Snapshot().Player.Coins,
	}, nil
}

// Owned lists purchased item ids.
func (s *Shop) Owned() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.owned))
	for _, it := range items {
		if s.owned[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}

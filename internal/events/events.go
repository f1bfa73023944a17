// Package events holds the random market-event decision prompts: a
// scripted scenario pops up, the player picks one of three responses,
// and the outcome lands in the game state store as XP and a portfolio
// swing proportional to current net worth.
package events

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"nitvon/internal/game"
)

var (
	ErrUnknownEvent  = errors.New("unknown event")
	ErrUnknownChoice = errors.New("unknown choice")
)

type Outcome string

const (
	OutcomePositive Outcome = "positive"
	OutcomeNegative Outcome = "negative"
	OutcomeNeutral  Outcome = "neutral"
)

type Choice struct {
	ID              string  `json:"id"`
	Text            string  `json:"text"`
	Outcome         Outcome `json:"outcome"`
	XPReward        int     `json:"xp_reward"`
	PortfolioChange float64 `json:"portfolio_change"` // fraction of current portfolio
	Description     string  `json:"description"`
}

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Severity    string   `json:"severity"`
	Choices     []Choice `json:"choices"`
}

var catalog = []Event{
	{
		ID:          "exchange-hack",
		Title:       "Exchange Hacked!",
		Description: "A major cryptocurrency exchange has been compromised. Hackers have stolen $100M worth of crypto, causing panic across all markets. Prices are dropping rapidly!",
		Type:        "hack",
		Severity:    "extreme",
		Choices: []Choice{
			{ID: "buy-dip", Text: "Buy the Dip", Outcome: OutcomePositive, XPReward: 25, PortfolioChange: 0.15,
				Description: "Risky but potentially rewarding - you believe the market will recover quickly."},
			{ID: "sell-all", Text: "Sell Everything", Outcome: OutcomeNegative, XPReward: 10, PortfolioChange: -0.05,
				Description: "Play it safe and minimize losses, but you might miss the recovery."},
			{ID: "hold-strong", Text: "Hold Strong", Outcome: OutcomeNeutral, XPReward: 15, PortfolioChange: -0.08,
				Description: "Weather the storm and wait for markets to stabilize."},
		},
	},
	{
		ID:          "whale-movement",
		Title:       "Whale Alert!",
		Description: "A crypto whale just moved 50,000 BTC to an unknown wallet. The community is speculating whether this is a sign of an incoming dump or institutional adoption.",
		Type:        "whale",
		Severity:    "high",
		Choices: []Choice{
			{ID: "follow-whale", Text: "Follow the Whale", Outcome: OutcomePositive, XPReward: 20, PortfolioChange: 0.12,
				Description: "Trust the whale's judgment and make similar moves."},
			{ID: "contrarian-bet", Text: "Bet Against It", Outcome: OutcomeNegative, XPReward: 30, PortfolioChange: -0.1,
				Description: "Go against the crowd - sometimes whales are wrong."},
			{ID: "wait-and-see", Text: "Wait and See", Outcome: OutcomeNeutral, XPReward: 10, PortfolioChange: 0.02,
				Description: "Observe the market reaction before making any moves."},
		},
	},
	{
		ID:          "fomo-wave",
		Title:       "FOMO Wave Incoming!",
		Description: "Social media is buzzing about a new 'revolutionary' cryptocurrency. Influencers are promoting it heavily, and retail investors are rushing in. The price has already pumped 300%!",
		Type:        "fomo",
		Severity:    "medium",
		Choices: []Choice{
			{ID: "join-fomo", Text: "Join the FOMO", Outcome: OutcomeNegative, XPReward: 5, PortfolioChange: -0.15,
				Description: "Jump on the bandwagon - but you might be too late."},
			{ID: "avoid-fomo", Text: "Avoid the Hype", Outcome: OutcomePositive, XPReward: 25, PortfolioChange: 0.05,
				Description: "Stay disciplined and avoid the obvious trap."},
			{ID: "small-bet", Text: "Small Speculative Bet", Outcome: OutcomeNeutral, XPReward: 15, PortfolioChange: -0.03,
				Description: "Risk a small amount just in case it's legitimate."},
		},
	},
}

// All returns the event catalog.
func All() []Event {
	return catalog
}

// Find returns the event with the given id.
func Find(id string) (Event, error) {
	for _, e := range catalog {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrUnknownEvent
}

// Picker draws random events for the event screen.
type Picker struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewPicker(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rand: rand.New(rand.NewSource(seed))}
}

func (p *Picker) Next() Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return catalog[p.rand.Intn(len(catalog))]
}

type Result struct {
	Event          Event   `json:"event"`
	Choice         Choice  `json:"choice"`
	XPGained       int     `json:"xp_gained"`
	PortfolioDelta float64 `json:"portfolio_delta"`
}

// Resolve applies the chosen response: XP reward plus a portfolio swing
// proportional to the player's current portfolio.
func Resolve(store *game.Store, eventID, choiceID string) (Result, error) {
	event, err := Find(eventID)
	if err != nil {
		return Result{}, err
	}
	var choice *Choice
	for i := range event.Choices {
		if event.Choices[i].ID == choiceID {
			choice = &event.Choices[i]
			break
		}
	}
	if choice == nil {
		return Result{}, ErrUnknownChoice
	}

	store.AddXP(choice.XPReward)
	portfolio := store.Snapshot().Player.Portfolio
	delta := portfolio * choice.PortfolioChange
	next := portfolio + delta
	store.UpdatePlayer(game.PlayerPatch{Portfolio: &next})

	return Result{Event: event, Choice: *choice, XPGained: choice.XPReward, PortfolioDelta: delta}, nil
}

package market

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"nitvon/internal/game"
)

// Desk executes simulated trades against the current quote and feeds the
// outcome into the game state store: portfolio delta, XP and the trade
// record itself.
type Desk struct {
	mu    sync.Mutex
	sim   *Simulator
	store *game.Store
	rand  *rand.Rand
}

type TradeOutcome struct {
	Trade    game.Trade `json:"trade"`
	Profit   float64    `json:"profit"`
	XPGained int        `json:"xp_gained"`
	Message  string     `json:"message"`
}

func NewDesk(sim *Simulator, store *game.Store, seed int64) *Desk {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Desk{sim: sim, store: store, rand: rand.New(rand.NewSource(seed))}
}

// Execute runs one buy/sell round: 60% of trades win up to +20%, losses
// run up to -15%. Wins earn profit-scaled XP, losses a consolation 5.
func (d *Desk) Execute(symbol string, typ game.TradeType, amount float64) (TradeOutcome, error) {
	if typ != game.TradeBuy && typ != game.TradeSell {
		return TradeOutcome{}, fmt.Errorf("invalid trade type %q", typ)
	}
	if amount <= 0 {
		return TradeOutcome{}, fmt.Errorf("trade amount must be positive")
	}
	quote, err := d.sim.Quote(symbol)
	if err != nil {
		return TradeOutcome{}, err
	}

	d.mu.Lock()
	win := d.rand.Float64() > 0.4
	var multiplier float64
	if win {
		multiplier = 1 + d.rand.Float64()*0.2
	} else {
		multiplier = 1 - d.rand.Float64()*0.15
	}
	d.mu.Unlock()

	profit := amount*multiplier - amount

	portfolio := d.store.Snapshot().Player.Portfolio + profit
	d.store.UpdatePlayer(game.PlayerPatch{Portfolio: &portfolio})

	xpGain := 5
	if win {
		xpGain = int(math.Floor(profit/10)) + 10
	}
	d.store.AddXP(xpGain)

	trade := d.store.AddTrade(game.TradeInput{
		Symbol: symbol,
		Type:   typ,
		Amount: amount,
		Price:  quote.Price,
		Profit: profit,
	})

	msg := fmt.Sprintf("Nice trade! You made $%.2f. Keep it up!", profit)
	if !win {
		msg = fmt.Sprintf("Tough break. You lost $%.2f. Learn from this!", math.Abs(profit))
	}
	return TradeOutcome{Trade: trade, Profit: profit, XPGained: xpGain, Message: msg}, nil
}

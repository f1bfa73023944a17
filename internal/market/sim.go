package market

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"
)

var ErrUnknownSymbol = errors.New("unknown symbol")

// historyLimit bounds the per-coin price series kept for charts.
const historyLimit = 288

type Quote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"` // percent move on the last tick
}

type PricePoint struct {
	At    time.Time `json:"at"`
	Price float64   `json:"price"`
}

type marketDynamics struct {
	NoiseScale        float64
	ShockProb         float64
	ShockScale        float64
	ExtremeShockProb  float64
	ExtremeShockScale float64
	MeanReversion     float64
	RegimeSwitchProb  float64
	MaxDropPerTick    float64
}

type coinState struct {
	coin    Coin
	price   float64
	prev    float64
	history []PricePoint
}

// Simulator drives the fake market: a mean-reverting random walk with
// regime drift and occasional shocks. It is a view-layer collaborator;
// it never writes into the game state store.
type Simulator struct {
	mu     sync.Mutex
	rand   *rand.Rand
	log    *slog.Logger
	params marketDynamics
	regime string
	coins  map[string]*coinState
	order  []string
}

func NewSimulator(volatility string, seed int64, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Simulator{
		rand:   rand.New(rand.NewSource(seed)),
		log:    logger,
		params: volatilityParams(volatility),
		regime: "neutral",
		coins:  make(map[string]*coinState),
	}
	now := time.Now().UTC()
	for _, c := range Catalog() {
		s.coins[c.Symbol] = &coinState{
			coin:    c,
			price:   c.BasePrice,
			prev:    c.BasePrice,
			history: []PricePoint{{At: now, Price: c.BasePrice}},
		}
		s.order = append(s.order, c.Symbol)
	}
	return s
}

// Tick advances every coin one step.
func (s *Simulator) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rand.Float64() < s.params.RegimeSwitchProb {
		s.regime = randomRegime(s.rand.Float64())
		s.log.Debug("market regime switch", "regime", s.regime)
	}

	now := time.Now().UTC()
	for _, sym := range s.order {
		c := s.coins[sym]
		ret := regimeDrift(s.regime) +
			s.params.NoiseScale*normalish(s.rand.Float64()) +
			meanReversion(c.price, c.coin.BasePrice, s.params.MeanReversion)
		if s.rand.Float64() < s.params.ShockProb {
			ret += signedShock(s.rand.Float64(), s.rand.Float64(), s.params.ShockScale)
		}
		if s.rand.Float64() < s.params.ExtremeShockProb {
			ret += signedShock(s.rand.Float64(), s.rand.Float64(), s.params.ExtremeShockScale)
		}

		c.prev = c.price
		c.price = evolvePrice(c.price, ret, s.params.MaxDropPerTick)

		c.history = append(c.history, PricePoint{At: now, Price: c.price})
		if len(c.history) > historyLimit {
			c.history = c.history[len(c.history)-historyLimit:]
		}
	}
}

// Run ticks the market until the context is cancelled.
func (s *Simulator) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

func (s *Simulator) Quotes() []Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Quote, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, s.coins[sym].quote())
	}
	return out
}

func (s *Simulator) Quote(symbol string) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coins[symbol]
	if !ok {
		return Quote{}, ErrUnknownSymbol
	}
	return c.quote(), nil
}

// History returns the bounded price series for one coin, oldest first.
func (s *Simulator) History(symbol string) ([]PricePoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coins[symbol]
	if !ok {
		return nil, ErrUnknownSymbol
	}
	return append([]PricePoint(nil), c.history...), nil
}

func (c *coinState) quote() Quote {
	change := 0.0
	if c.prev > 0 {
		change = (c.price - c.prev) / c.prev * 100
	}
	return Quote{
		Symbol: c.coin.Symbol,
		Name:   c.coin.Name,
		Icon:   c.coin.Icon,
		Price:  c.price,
		Change: change,
	}
}

func volatilityParams(mode string) marketDynamics {
	switch mode {
	case "calm":
		return marketDynamics{
			NoiseScale:        0.004,
			ShockProb:         0.04,
			ShockScale:        0.02,
			ExtremeShockProb:  0.005,
			ExtremeShockScale: 0.06,
			MeanReversion:     0.03,
			RegimeSwitchProb:  0.04,
			MaxDropPerTick:    0.10,
		}
	case "wild":
		return marketDynamics{
			NoiseScale:        0.020,
			ShockProb:         0.15,
			ShockScale:        0.06,
			ExtremeShockProb:  0.03,
			ExtremeShockScale: 0.18,
			MeanReversion:     0.01,
			RegimeSwitchProb:  0.10,
			MaxDropPerTick:    0.35,
		}
	default: // normal
		return marketDynamics{
			NoiseScale:        0.010,
			ShockProb:         0.08,
			ShockScale:        0.04,
			ExtremeShockProb:  0.01,
			ExtremeShockScale: 0.12,
			MeanReversion:     0.02,
			RegimeSwitchProb:  0.06,
			MaxDropPerTick:    0.20,
		}
	}
}

func randomRegime(seed float64) string {
	switch {
	case seed < 0.33:
		return "bear"
	case seed < 0.66:
		return "neutral"
	default:
		return "bull"
	}
}

func regimeDrift(regime string) float64 {
	switch regime {
	case "bull":
		return 0.0030
	case "bear":
		return -0.0030
	default:
		return 0
	}
}

func meanReversion(price, anchor, strength float64) float64 {
	if anchor <= 0 {
		return 0
	}
	return strength * (anchor - price) / anchor
}

// normalish maps a uniform [0,1) sample onto [-1,1).
func normalish(seed float64) float64 {
	return seed + seed - 1
}

func signedShock(magSeed, signSeed, base float64) float64 {
	mag := base * (0.35 + 2.8*magSeed*magSeed)
	if signSeed < 0.5 {
		return -mag
	}
	return mag
}

func evolvePrice(price, ret, maxDropPerTick float64) float64 {
	// Bound only the downside; upside can run.
	if ret < -maxDropPerTick {
		ret = -maxDropPerTick
	}
	next := price * math.Exp(ret)
	if next < 0.0001 {
		next = 0.0001
	}
	return next
}

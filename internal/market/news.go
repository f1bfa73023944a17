package market

import (
	"math/rand"
	"sync"
)

type Headline struct {
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"` // bullish | bearish | neutral
}

var headlines = []Headline{
	{Text: "Institutional investors pile into Bitcoin as ETF inflows hit new highs", Sentiment: "bullish"},
	{Text: "Major exchange reports record trading volume amid market rally", Sentiment: "bullish"},
	{Text: "Regulators signal tougher stance on unregistered crypto offerings", Sentiment: "bearish"},
	{Text: "Whale wallet moves 50,000 BTC, community speculates on intent", Sentiment: "neutral"},
	{Text: "Nitvon Coin community celebrates protocol upgrade milestone", Sentiment: "bullish"},
	{Text: "Analysts warn of overheated derivatives funding rates", Sentiment: "bearish"},
	{Text: "Layer-2 adoption accelerates as fees stay near record lows", Sentiment: "bullish"},
	{Text: "Stablecoin issuer publishes quarterly attestation report", Sentiment: "neutral"},
}

// Ticker hands out rotating mock headlines for the news panel.
type Ticker struct {
	mu   sync.Mutex
	rand *rand.Rand
	next int
}

func NewTicker(seed int64) *Ticker {
	t := &Ticker{rand: rand.New(rand.NewSource(seed))}
	t.next = t.rand.Intn(len(headlines))
	return t
}

func (t *Ticker) Next() Headline {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := headlines[t.next]
	t.next = (t.next + 1) % len(headlines)
	return h
}

// Latest returns up to n distinct recent headlines, newest first.
func (t *Ticker) Latest(n int) []Headline {
	if n <= 0 || n > len(headlines) {
		n = len(headlines)
	}
	out := make([]Headline, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, t.Next())
	}
	return out
}

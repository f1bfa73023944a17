package market

// Coin is one tradeable asset in the simulated market. Prices are play
// money; nothing here touches a real exchange.
type Coin struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	BasePrice float64 `json:"base_price"`
}

// Catalog returns the fixed coin list, in display order.
func Catalog() []Coin {
	return []Coin{
		{Symbol: "BTC", Name: "Bitcoin", Icon: "₿", BasePrice: 45000},
		{Symbol: "ETH", Name: "Ethereum", Icon: "Ξ", BasePrice: 2800},
		{Symbol: "SOL", Name: "Solana", Icon: "◎", BasePrice: 120},
		{Symbol: "ADA", Name: "Cardano", Icon: "₳", BasePrice: 0.45},
		{Symbol: "DOT", Name: "Polkadot", Icon: "●", BasePrice: 6.5},
		{Symbol: "MATIC", Name: "Polygon", Icon: "⬡", BasePrice: 0.85},
		{Symbol: "NITVON", Name: "Nitvon Coin", Icon: "🚀", BasePrice: 1.5},
	}
}

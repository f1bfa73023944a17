package config

import (
	"os"
	"strings"
	"time"
)

type APIConfig struct {
	Addr             string
	SavePath         string
	MarketTickEvery  time.Duration
	MarketVolatility string
}

type GameConfig struct {
	SavePath         string
	MarketTickEvery  time.Duration
	MarketVolatility string
}

func LoadAPIFromEnv() APIConfig {
	addr := os.Getenv("PORT")
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("NITVON_API_ADDR", ":8080")
	}

	return APIConfig{
		Addr:             addr,
		SavePath:         strings.TrimSpace(os.Getenv("NITVON_SAVE_PATH")),
		MarketTickEvery:  envDurationDefault("NITVON_MARKET_TICK_EVERY", 5*time.Second),
		MarketVolatility: envVolatilityDefault(),
	}
}

func LoadGameFromEnv() GameConfig {
	return GameConfig{
		SavePath:         strings.TrimSpace(os.Getenv("NITVON_SAVE_PATH")),
		MarketTickEvery:  envDurationDefault("NITVON_MARKET_TICK_EVERY", 5*time.Second),
		MarketVolatility: envVolatilityDefault(),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envDurationDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envVolatilityDefault() string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NITVON_MARKET_VOLATILITY")))
	switch v {
	case "calm", "normal", "wild":
		return v
	default:
		return "normal"
	}
}

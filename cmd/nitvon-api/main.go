package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nitvon/internal/api"
	"nitvon/internal/config"
	"nitvon/internal/events"
	"nitvon/internal/game"
	"nitvon/internal/market"
	"nitvon/internal/scamgame"
	"nitvon/internal/shop"
	"nitvon/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()
	cfg := config.LoadAPIFromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	savePath := cfg.SavePath
	if savePath == "" {
		var err error
		savePath, err = storage.DefaultPath()
		if err != nil {
			logger.Error("resolve save path", "err", err)
			os.Exit(1)
		}
	}
	snapshots, err := storage.Open(savePath, logger)
	if err != nil {
		logger.Error("open save", "err", err)
		os.Exit(1)
	}
	defer snapshots.Close()

	store := game.NewStore(snapshots.Load(ctx), logger)
	snapshots.Attach(store)

	sim := market.NewSimulator(cfg.MarketVolatility, 0, logger)
	go sim.Run(ctx, cfg.MarketTickEvery)

	server := api.New(cfg, logger, api.Deps{
		Store:  store,
		Sim:    sim,
		Desk:   market.NewDesk(sim, store, 0),
		News:   market.NewTicker(time.Now().UnixNano()),
		Picker: events.NewPicker(0),
		Quiz:   scamgame.NewQuiz(store, 0),
		Shop:   shop.New(store),
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("nitvon api listening", "addr", cfg.Addr, "save", savePath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}

package main

import (
	httpapi "gridplay/internal/api/http"
	"gridplay/internal/api/ws"
	"gridplay/internal/config"
	"gridplay/internal/game/puzzle"
	"gridplay/internal/room"
	"gridplay/internal/store"

	"go.uber.org/zap"
)

// @title Gridplay Relay API
// @version 1.0
// @description Relay server for two-player Othello and block-puzzle rooms
// @BasePath /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	newDealer := func() puzzle.Dealer { return puzzle.NewRandomDealer(0) }
	if cfg.Dealer == "density" {
		newDealer = func() puzzle.Dealer { return puzzle.NewDensityDealer(0) }
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, logger, newDealer)
	hub := ws.NewHub(rm, logger)
	rm.SetHub(hub)

	if _, err := rm.StartJanitor(cfg.JanitorSpec, cfg.RoomTTL); err != nil {
		logger.Fatal("failed to start janitor", zap.Error(err))
	}

	r := httpapi.NewRouter(rm, hub, cfg, logger)
	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	httpadapter "darklife/internal/adapter/http"
	metricsinmem "darklife/internal/adapter/metrics/inmemory"
	"darklife/internal/adapter/randsrc"
	gormrepo "darklife/internal/adapter/repo/gorm"
	"darklife/internal/adapter/repo/memory"
	"darklife/internal/app/exchange"
	"darklife/internal/app/ports"
	"darklife/internal/app/session"
	"darklife/internal/config"
	"darklife/internal/domain/life"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randsrc.New(seed)

	players, markets, events, txManager, err := buildRepos(cfg, logger)
	if err != nil {
		logger.Error("build repos", "err", err)
		os.Exit(1)
	}

	market := exchange.NewService(markets, rng)
	if err := market.RefreshIfStale(context.Background(), time.Now()); err != nil {
		logger.Error("bootstrap market", "err", err)
		os.Exit(1)
	}

	recorder := metricsinmem.NewRecorder()
	sessionUC := &session.UseCase{
		TxManager: txManager,
		Players:   players,
		Events:    events,
		Market:    market,
		Metrics:   recorder,
		Decay:     life.DecayService{},
		Rand:      rng,
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		Session: sessionUC,
		Events:  events,
		Quotes:  market,
		KPI:     recorder,
		Limiter: httpadapter.NewPlayerLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	}

	s := server.Default(server.WithHostPorts(cfg.ListenAddr))
	h.RegisterRoutes(s)

	logger.Info("darklife server listening", "addr", cfg.ListenAddr, "memory_store", cfg.MemoryStore)
	s.Spin()
}

func buildRepos(cfg config.Config, logger *slog.Logger) (ports.PlayerRepository, ports.MarketRepository, ports.EventRepository, ports.TxManager, error) {
	if cfg.MemoryStore {
		store := memory.NewStore()
		return memory.NewPlayerRepo(store), memory.NewMarketRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store), nil
	}

	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		return nil, nil, nil, nil, err
	}
	logger.Info("migrations applied", "dir", cfg.MigrationsDir)
	return gormrepo.NewPlayerRepo(db), gormrepo.NewMarketRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db), nil
}

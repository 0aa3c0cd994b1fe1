package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/netdiag/internal/config"
	"github.com/hamed0406/netdiag/internal/diag"
	"github.com/hamed0406/netdiag/internal/httpapi"
	"github.com/hamed0406/netdiag/internal/identity"
	"github.com/hamed0406/netdiag/internal/logging"
	"github.com/hamed0406/netdiag/internal/probe"
	"github.com/hamed0406/netdiag/internal/repo"
	"github.com/hamed0406/netdiag/internal/repo/memory"
	"github.com/hamed0406/netdiag/internal/repo/postgres"
	"github.com/hamed0406/netdiag/internal/repo/redisstore"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var store repo.ResultStore
	switch {
	case cfg.DatabaseURL != "":
		pg, err := postgres.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		store = pg
		logger.Info("store_postgres")
	case cfg.RedisAddr != "":
		rds, err := redisstore.New(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal(err)
		}
		defer rds.Close()
		store = rds
		logger.Info("store_redis", zap.String("addr", cfg.RedisAddr))
	default:
		store = memory.New()
		logger.Info("store_memory")
	}

	orch := diag.NewOrchestrator(
		logger,
		probe.NewPingProbe(logger),
		probe.NewSpeedtestProbe(logger),
		store,
	)
	orch.PingCount = cfg.PingCount
	orch.PingTimeout = cfg.PingTimeout
	orch.ThroughputTimeout = cfg.SpeedtestTimeout

	ids := identity.ParseKeys(cfg.OwnerAPIKeys)
	api := httpapi.NewServer(logger, store, orch)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router(ids, cfg.PublicRPM, cfg.PublicBurst)); err != nil {
		log.Fatal(err)
	}
}

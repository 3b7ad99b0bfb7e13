package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/quikcash/loanledger/internal/config"
	"github.com/quikcash/loanledger/internal/pg"
	"github.com/quikcash/loanledger/internal/repo"
	"github.com/quikcash/loanledger/internal/service"
	"github.com/quikcash/loanledger/internal/sweep"
	"github.com/quikcash/loanledger/pkg/logger"
	"github.com/quikcash/loanledger/pkg/upload"
)

// The sweeper re-prices open loans on a schedule so overdue interest
// lands daily even when nobody touches the loan through the API.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.New()
	if err := logger.InitLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		zap.L().Fatal("can't parse database DSN", zap.Error(err))
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		zap.L().Fatal("can't build pgx pool", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		zap.L().Fatal("can't reach database", zap.Error(err))
	}

	uploads, err := upload.New(cfg.UploadDir)
	if err != nil {
		zap.L().Fatal("can't init upload store", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.RedisAddress != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		if err := rdb.Ping(ctx).Err(); err != nil {
			zap.L().Warn("redis unreachable, settings cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	txManager := pg.NewTXManager(pool)
	repos := repo.New(pg.New(pool), txManager)
	services := service.New(repos, rdb, uploads, txManager)

	sweeper := sweep.New(repos.Loan, services.Settlement, cfg.SweepLimit)
	defer sweeper.Close()

	c := cron.New(cron.WithSeconds())
	_, err = c.AddFunc(cfg.SweepSchedule, func() {
		if err := sweeper.Run(ctx); err != nil {
			zap.L().Error("sweep run failed", zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Fatal("invalid sweep schedule", zap.String("schedule", cfg.SweepSchedule), zap.Error(err))
	}

	c.Start()
	zap.L().Info("sweeper started", zap.String("schedule", cfg.SweepSchedule))

	<-ctx.Done()
	zap.L().Info("shutting down sweeper")
	<-c.Stop().Done()
	zap.L().Info("sweeper stopped")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"smaug/internal/billing"
	"smaug/internal/cache"
	"smaug/internal/catalog"
	"smaug/internal/config"
	"smaug/internal/infrastructure/logger"
	"smaug/internal/infrastructure/mysql"
	"smaug/internal/server"
	"smaug/internal/stock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	var snapshots cache.SnapshotCache = cache.NoopSnapshotCache{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisSnapshotCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			zapLogger.Warn("redis unreachable, running without snapshot cache", zap.Error(err))
		} else {
			defer redisCache.Close()
			snapshots = redisCache
			zapLogger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		}
	}

	catalogCtrl, catalogSvc := catalog.NewModule(db, snapshots, cfg.Catalog.CacheTTL, zapLogger)
	billingCtrl := billing.NewModule(db, catalogSvc, cfg, zapLogger)
	stockCtrl := stock.NewModule(db, zapLogger)

	router := server.NewRouter(billingCtrl, catalogCtrl, stockCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

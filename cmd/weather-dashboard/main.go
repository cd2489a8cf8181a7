// cmd/weather-dashboard/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bank-support/internal/common/aws"
	"bank-support/internal/common/config"
	"bank-support/internal/common/database"
	"bank-support/internal/common/logger"
	"bank-support/internal/weather"
)

// defaultCities are processed when no cities are given on the command line.
var defaultCities = []string{"Philadelphia", "Seattle", "New York"}

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting weather dashboard...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			zapLog.Info("metrics endpoint listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ctx := context.Background()

	// --- Init Redis with retry; the cache is optional ---
	var cache *database.RedisClient
	err = retryWithBackoff(func() error {
		client, err := database.NewRedis(cfg.Cache.Redis)
		if err != nil {
			return err
		}
		if err := client.Ping(ctx); err != nil {
			client.Close()
			return err
		}
		cache = client
		return nil
	}, 3, time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Warn("redis unavailable, caching disabled", zap.Error(err))
		cache = nil
	} else {
		defer cache.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Init S3 client ---
	s3Client, err := aws.NewS3Client(ctx, cfg.Storage.Region)
	if err != nil {
		zapLog.Fatal("s3 client init failed", zap.Error(err))
	}
	zapLog.Info("S3 client initialized", zap.String("region", cfg.Storage.Region))

	weatherCfg := weather.FromAppConfig(cfg)

	fetcher := weather.NewFetcher(weatherCfg, cache, log)
	store := weather.NewStore(weatherCfg, s3Client, log)

	dashboard, err := weather.NewDashboard(weatherCfg, fetcher, store, log)
	if err != nil {
		zapLog.Fatal("dashboard init failed", zap.Error(err))
	}

	if err := store.EnsureBucket(ctx); err != nil {
		zapLog.Fatal("bucket setup failed", zap.Error(err))
	}

	cities := flag.Args()
	if len(cities) == 0 {
		cities = defaultCities
	}

	for _, city := range cities {
		if err := dashboard.ProcessCity(ctx, city); err != nil {
			log.WithError(err).Warn("skipping city", map[string]interface{}{"city": city})
		}
	}

	zapLog.Info("All cities processed")
}

// cmd/support-assistant/main.go
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
	"bank-support/internal/common/logger"
	"bank-support/internal/common/observability"
	"bank-support/internal/support"
)

// defaultQueries are processed when no queries are given on the command line.
var defaultQueries = []string{
	"I have a question about a transaction for $50 on my credit card yesterday.",
	"I want to open a new savings account.",
}

func main() {
	email := flag.String("email", "", "customer email address for response delivery")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting support assistant...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("support-assistant")
	defer obs.Shutdown()

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

	var emailClient support.EmailSender
	if cfg.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		emailClient = sesClient
		zapLog.Info("SES client initialized", zap.String("region", cfg.Notifications.AWSRegion))
	}

	var topicClient support.TopicPublisher
	if cfg.Notifications.Escalation.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		topicClient = snsClient
		zapLog.Info("SNS client initialized", zap.String("topic", cfg.Notifications.Escalation.TopicARN))
	}

	handler := support.NewHandler(support.FromAppConfig(cfg), log, emailClient, topicClient)

	queries := flag.Args()
	if len(queries) == 0 {
		queries = defaultQueries
	}

	for _, query := range queries {
		zapLog.Info("Processing query", zap.String("query", query))

		start := time.Now()
		output, err := handler.Execute(ctx, &support.Input{
			Query:         query,
			CustomerEmail: *email,
		})
		if err != nil {
			log.WithError(err).Error("query processing failed", map[string]interface{}{
				"query": query,
			})
			continue
		}

		obs.RecordQueryProcessed(ctx, string(output.Category))
		obs.RecordQueryDuration(ctx, time.Since(start), string(output.Category))

		for i, stage := range output.StageOutputs() {
			zapLog.Info(fmt.Sprintf("Step %d:", i+1), zap.Any("output", stage))
		}
	}

	zapLog.Info("All queries processed")
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streamvault/payment-service/internal/config"
	"github.com/streamvault/payment-service/internal/delivery/httpapi"
	"github.com/streamvault/payment-service/internal/delivery/httpapi/middleware"
	"github.com/streamvault/payment-service/internal/infrastructure/email"
	publisher "github.com/streamvault/payment-service/internal/infrastructure/kafka"
	"github.com/streamvault/payment-service/internal/infrastructure/metrics"
	"github.com/streamvault/payment-service/internal/infrastructure/migrate"
	"github.com/streamvault/payment-service/internal/infrastructure/nowpayments"
	"github.com/streamvault/payment-service/internal/infrastructure/postgres"
	"github.com/streamvault/payment-service/internal/infrastructure/postgres/repository"
	usecase "github.com/streamvault/payment-service/internal/usecase/order"
)

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.PaymentDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.PaymentDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)

	// Init order repo
	orderRepo := repository.NewDefaultOrderRepository(db)

	// Init gateway client
	gateway := nowpayments.NewClient(
		cfg.NOWPayments.BaseURL,
		cfg.NOWPayments.APIKey,
		cfg.NOWPayments.CallbackURL,
		cfg.NOWPayments.Timeout,
	)

	// Init credential mailer
	mailer := email.NewSMTPSender(cfg.SMTP)

	// Init metrics
	paymentMetrics := metrics.NewPaymentMetrics()

	// Init payment usecase
	uc := usecase.NewDefaultPaymentUsecase(
		orderRepo,
		gateway,
		pub,
		mailer,
		paymentMetrics,
		usecase.Settings{
			SettlementCurrency: cfg.Payment.SettlementCurrency,
			DefaultPayCurrency: cfg.Payment.DefaultPayCurrency,
			OrderTTL:           cfg.Payment.OrderTTL,
			PriceCeiling:       cfg.Payment.PriceCeiling,
			ActivationTopic:    cfg.KafkaService.ActivationTopic,
			FailureTopic:       cfg.KafkaService.FailureTopic,
		},
	)

	// HTTP delivery
	handler := httpapi.NewPaymentHandler(uc, cfg.NOWPayments.IPNSecret, cfg.NOWPayments.RequireSignature)
	handler.Metrics = paymentMetrics
	limiter := middleware.NewRateLimiter(10, 5)
	limiter.StartCleanup(5*time.Minute, 15*time.Minute)
	router := httpapi.NewRouter(handler, limiter, cfg.AdminAPI.Token)

	// Expiry sweep for unpaid orders past their TTL
	go func() {
		ticker := time.NewTicker(cfg.Payment.ExpirySweepInterval)
		defer ticker.Stop()

		for range ticker.C {
			if _, err := uc.ExpireOverdueOrders(context.Background()); err != nil {
				log.Printf("Expiry sweep error: %v", err)
			}
		}
	}()

	// Prometheus endpoint on its own listener
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.MetricsPort)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("payment service started on %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
}

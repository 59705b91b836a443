package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ryan-peirce/willful-waste/internal/catalog"
	"github.com/ryan-peirce/willful-waste/internal/config"
	"github.com/ryan-peirce/willful-waste/internal/httpx"
	kafkax "github.com/ryan-peirce/willful-waste/internal/kafka"
	"github.com/ryan-peirce/willful-waste/internal/orders"
	"github.com/ryan-peirce/willful-waste/internal/postgres"
	"github.com/ryan-peirce/willful-waste/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := &orders.Repo{DB: db}
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("schema sync failed", "err", err)
		os.Exit(1)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Broker reachability gates startup for both producer and consumer.
	if err := kafkax.Ping(ctx, cfg.KafkaBrokers); err != nil {
		logger.Error("kafka connect failed", "brokers", cfg.KafkaBrokers, "err", err)
		os.Exit(1)
	}

	prod := kafkax.NewProducer(cfg.KafkaBrokers, cfg.OrderTopic, logger)

	// Catalog read model
	cache := catalog.NewCache()
	cons := catalog.NewConsumer(cfg.KafkaBrokers, cfg.ConsumerGroup, cfg.ProductTopic, cache, logger)
	consDone := make(chan error, 1)
	go func() {
		logger.Info("catalog consumer started", "group", cfg.ConsumerGroup, "topic", cfg.ProductTopic)
		consDone <- cons.Run(ctx)
	}()

	// HTTP
	svc := &orders.Service{Repo: repo, Events: prod, Log: logger}
	router := httpx.NewRouter(cfg.ServiceName)
	oh := &httpx.OrdersHandler{Service: svc, Redis: rdb}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http listen failed", "err", err)
			os.Exit(1)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	cancel() // stop the consumer loop
	if err := <-consDone; err != nil {
		logger.Error("catalog consumer exited", "err", err)
	}
	if err := prod.Close(); err != nil {
		logger.Error("producer close failed", "err", err)
	}
}

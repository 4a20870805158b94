package main

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"go-exchange-rate-client"
	"go-exchange-rate-client/coinmarketcap"
	"go-exchange-rate-client/config"
	"go-exchange-rate-client/exchange"
	"go-exchange-rate-client/http"
	"go-exchange-rate-client/metrics"
	"os"
	"os/signal"
	"syscall"
	"time"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_ = level.Error(rate.NewLogger(os.Stderr, "info")).Log("msg", "failed to load config", "err", err)
		os.Exit(1)
	}
	logger := rate.NewLogger(os.Stderr, cfg.Log.Level)

	rateService := coinmarketcap.NewService(cfg.Exchange.BaseURL, coinmarketcap.NewHTTPClient(cfg.Exchange.Timeout))
	rateService = coinmarketcap.NewLoggingService(log.With(logger, "component", "coinmarketcap"), rateService)
	rateService = coinmarketcap.NewInstrumentingService(metrics.New(prometheus.DefaultRegisterer), rateService)

	convertService := exchange.NewService(rate.Currency(cfg.Exchange.Asset), rateService)
	convertService = exchange.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	server := &nhttp.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           http.NewServer(convertService, log.With(logger, "component", "http")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		_ = level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr, "asset", cfg.Exchange.Asset)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			_ = level.Error(logger).Log("msg", "http server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		_ = level.Error(logger).Log("msg", "shutdown failed", "err", err)
	}
}

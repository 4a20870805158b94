package main

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-exchange-rate-client"
	"go-exchange-rate-client/coinmarketcap"
	"go-exchange-rate-client/config"
	"os"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s BASE QUOTE\n", os.Args[0])
		os.Exit(2)
	}
	base, quote := rate.Currency(os.Args[1]), rate.Currency(os.Args[2])

	cfg, err := config.Load()
	if err != nil {
		_ = level.Error(rate.NewLogger(os.Stderr, "info")).Log("msg", "failed to load config", "err", err)
		os.Exit(1)
	}
	logger := rate.NewLogger(os.Stderr, cfg.Log.Level)

	service := coinmarketcap.NewService(cfg.Exchange.BaseURL, coinmarketcap.NewHTTPClient(cfg.Exchange.Timeout))
	service = coinmarketcap.NewLoggingService(level.Debug(log.With(logger, "component", "coinmarketcap")), service)

	done := make(chan error, 1)
	coinmarketcap.Query(context.Background(), service, base, quote, coinmarketcap.CallbackFuncs{
		Success: func(exchangeRate rate.ExchangeRate) {
			fmt.Println(exchangeRate)
			done <- nil
		},
		Error: func(err error) {
			done <- err
		},
	})

	if err := <-done; err != nil {
		if ee, ok := rate.AsExchangeError(err); ok {
			msg, _ := ee.ErrorMsg()
			_ = level.Error(logger).Log("msg", "lookup failed", "code", ee.Code(), "error_msg", msg, "err", err)
		} else {
			_ = level.Error(logger).Log("msg", "lookup failed", "err", err)
		}
		os.Exit(1)
	}
}

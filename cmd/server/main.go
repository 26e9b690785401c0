package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nattawatt/binance-thb-dashboard/internal/config"
	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
	"github.com/nattawatt/binance-thb-dashboard/internal/monitoring"
	"github.com/nattawatt/binance-thb-dashboard/internal/rates"
	"github.com/nattawatt/binance-thb-dashboard/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if !cfg.HasCredentials() {
		logger.Warn("BNB_API_KEY/BNB_SECRET_KEY not set, private endpoints will be rejected upstream")
	}

	client := binance.NewClient(binance.Config{
		APIKey:    cfg.Binance.APIKey,
		SecretKey: cfg.Binance.SecretKey,
		BaseURL:   cfg.Binance.BaseURL,
		Timeout:   cfg.HTTPTimeout,
	})

	converter := rates.NewConverter(cfg.Rates.URL, cfg.HTTPTimeout, logger)
	health := monitoring.NewHealthChecker()
	srv := server.New(client, converter, health, logger, cfg.StaticDir)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infof("dashboard listening on %s (exchange %s)", cfg.ListenAddr, cfg.Binance.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("shutdown failed")
	}
}

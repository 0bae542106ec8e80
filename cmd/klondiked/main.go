package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/config"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/server"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/stats"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	store, err := stats.Open(cfg.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to open stats store")
	}
	defer store.Close()

	srv := server.New(store, cfg.Difficulty, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.HTTPAddr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	case sig := <-stop:
		logger.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("shutdown failed")
		}
	}
}

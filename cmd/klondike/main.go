package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/config"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/game"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/stats"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)
	// The terminal belongs to the game while it runs.
	logger.SetOutput(os.Stderr)

	model := tui.New(cfg.Difficulty, logger)

	store, err := stats.Open(cfg.DBPath)
	if err != nil {
		logger.WithError(err).Warn("stats disabled")
	} else {
		defer store.Close()
		model.OnGameEnd = func(res game.Result) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Record(ctx, res); err != nil {
				logger.WithError(err).Error("failed to record result")
			}
		}
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

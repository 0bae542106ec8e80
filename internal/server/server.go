// Package server exposes the game over HTTP: a health probe, aggregate
// statistics, and a websocket endpoint that runs one session per
// connection.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/stats"
)

// Server hosts the HTTP and websocket API.
type Server struct {
	echo       *echo.Echo
	store      *stats.Store
	log        *logrus.Logger
	difficulty engine.Difficulty

	// newRNG builds the RNG for each fresh deal. Swappable in tests.
	newRNG func() engine.RNG
}

// New wires the routes. store may be nil, in which case /stats reports
// zeroes and finished games are not recorded.
func New(store *stats.Store, difficulty engine.Difficulty, logger *logrus.Logger) *Server {
	s := &Server{
		store:      store,
		log:        logger,
		difficulty: difficulty,
		newRNG:     func() engine.RNG { return engine.NewXorshift64(uint64(time.Now().UnixNano())) },
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/healthz", s.handleHealth)
	e.GET("/stats", s.handleStats)
	e.GET("/ws", s.handleWS)

	s.echo = e
	return s
}

// Start listens on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("listening")
	return s.echo.Start(addr)
}

// Shutdown drains the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(c echo.Context) error {
	if s.store == nil {
		return c.JSON(http.StatusOK, statsResponse{})
	}
	sum, err := s.store.Summary(c.Request().Context())
	if err != nil {
		s.log.WithError(err).Error("stats query failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "stats unavailable")
	}
	return c.JSON(http.StatusOK, statsResponse{
		Played:     sum.Played,
		Won:        sum.Won,
		BestScore:  sum.BestScore,
		TotalMoves: sum.TotalMoves,
	})
}

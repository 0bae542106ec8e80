package server

import (
	"context"
	"errors"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/config"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/game"
)

const writeTimeout = 10 * time.Second

// handleWS upgrades the connection and runs one game session for its
// lifetime. The read loop is the only goroutine driving the session, so
// broadcast writes never interleave.
func (s *Server) handleWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusInternalError, "session closed")

	ctx := c.Request().Context()

	difficulty := s.difficulty
	if q := c.QueryParam("difficulty"); q != "" {
		d, err := config.ParseDifficulty(q)
		if err != nil {
			conn.Close(websocket.StatusUnsupportedData, err.Error())
			return nil
		}
		difficulty = d
	}

	sess, err := game.NewSession(difficulty, s.newRNG(), s.log)
	if err != nil {
		s.log.WithError(err).Error("deal failed")
		conn.Close(websocket.StatusInternalError, "deal failed")
		return nil
	}

	log := s.log.WithFields(logrus.Fields{
		"game":   sess.ID,
		"remote": c.RealIP(),
	})

	sess.BroadcastFn = func(ev game.Event) {
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		defer cancel()
		if err := wsjson.Write(wctx, conn, ev); err != nil {
			log.WithError(err).Debug("broadcast write failed")
		}
	}
	if s.store != nil {
		sess.OnGameEnd = func(res game.Result) {
			rctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			defer cancel()
			if err := s.store.Record(rctx, res); err != nil {
				log.WithError(err).Error("failed to record result")
			}
		}
	}

	log.Info("session started")

	// Push the opening deal before reading any intent.
	snap := sess.Snapshot()
	sess.BroadcastFn(game.Event{Type: game.EventState, State: &snap})

	for {
		var in Intent
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				log.Info("session closed")
			} else {
				log.WithError(err).Info("session read failed")
			}
			return nil
		}
		if err := s.dispatch(sess, in); err != nil {
			conn.Close(websocket.StatusUnsupportedData, err.Error())
			return nil
		}
	}
}

// dispatch applies one client intent to the session.
func (s *Server) dispatch(sess *game.Session, in Intent) error {
	switch in.Type {
	case intentMove:
		dir, err := parseDirection(in.Dir)
		if err != nil {
			return err
		}
		sess.Move(dir)
	case intentAct:
		sess.Act()
	case intentCancel:
		sess.Cancel()
	case intentNew:
		difficulty := s.difficulty
		if in.Difficulty != "" {
			d, err := config.ParseDifficulty(in.Difficulty)
			if err != nil {
				return err
			}
			difficulty = d
		}
		return sess.Restart(difficulty, s.newRNG())
	default:
		return errors.New("unknown intent type")
	}
	return nil
}

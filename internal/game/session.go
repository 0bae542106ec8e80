// Package game wraps a single engine.Board in a session suitable for
// sharing between a driving loop and observers: a mutex serializes all
// access, every state change fires a broadcast callback, and a finished
// game is scored and reported exactly once.
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
)

// EventType identifies a session broadcast.
type EventType string

const (
	// EventState carries a full board snapshot after a state change.
	EventState EventType = "state"
	// EventGameEnd carries the final result once victory is detected.
	EventGameEnd EventType = "game_end"
)

// Event is the payload handed to BroadcastFn.
type Event struct {
	Type   EventType `json:"type"`
	State  *Snapshot `json:"state,omitempty"`
	Result *Result   `json:"result,omitempty"`
}

// Result summarizes a finished game.
type Result struct {
	GameID     uuid.UUID `json:"gameId"`
	Difficulty string    `json:"difficulty"`
	Moves      int       `json:"moves"`
	Duration   int       `json:"durationSec"`
	Won        bool      `json:"won"`
	Score      int       `json:"score"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Session owns one board for the lifetime of a game. The board itself
// is single-threaded; the session's mutex is what makes it safe to
// drive from a connection handler while observers read snapshots.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	board     *engine.Board
	startedAt time.Time
	won       bool

	log *logrus.Entry

	// BroadcastFn, when set, receives an event after every
	// state-changing operation.
	BroadcastFn func(Event)
	// OnGameEnd, when set, is called once when victory is detected.
	OnGameEnd func(Result)
}

// NewSession deals a board for the difficulty and starts the clock.
func NewSession(difficulty engine.Difficulty, rng engine.RNG, logger *logrus.Logger) (*Session, error) {
	board, err := engine.NewGame(difficulty, rng)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Session{
		ID:        id,
		board:     board,
		startedAt: time.Now(),
		log: logger.WithFields(logrus.Fields{
			"game":       id,
			"difficulty": difficulty.String(),
		}),
	}, nil
}

// Restart replaces the board with a fresh deal and resets the clock.
// The session keeps its ID and callbacks.
func (s *Session) Restart(difficulty engine.Difficulty, rng engine.RNG) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := engine.NewGame(difficulty, rng)
	if err != nil {
		return err
	}
	s.board = board
	s.startedAt = time.Now()
	s.won = false
	s.log = s.log.WithField("difficulty", difficulty.String())
	s.log.Info("game restarted")
	s.fireState()
	return nil
}

// Move advances the cursor.
func (s *Session) Move(dir engine.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.MovePointer(dir)
	s.fireState()
}

// Act performs the select/confirm operation and checks for victory.
func (s *Session) Act() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.PointerAction()
	s.fireState()
	s.checkEnd()
}

// Cancel clears the active selection.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.ResetSelection()
	s.fireState()
}

// Snapshot returns a read-only view of the current board.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Won reports whether victory has been detected.
func (s *Session) Won() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.won
}

// fireState broadcasts a snapshot. Lock must be held.
func (s *Session) fireState() {
	if s.BroadcastFn == nil {
		return
	}
	snap := s.snapshotLocked()
	s.BroadcastFn(Event{Type: EventState, State: &snap})
}

// checkEnd detects victory, scores the game and reports it exactly
// once. Lock must be held.
func (s *Session) checkEnd() {
	if s.won || !s.board.CheckVictory() {
		return
	}
	s.won = true
	elapsed := time.Since(s.startedAt)
	res := Result{
		GameID:     s.ID,
		Difficulty: s.board.Difficulty().String(),
		Moves:      s.board.Moves(),
		Duration:   int(elapsed.Seconds()),
		Won:        true,
		Score:      Score(s.board.Moves(), elapsed),
		FinishedAt: time.Now(),
	}
	s.log.WithFields(logrus.Fields{
		"moves": res.Moves,
		"score": res.Score,
	}).Info("game won")

	if s.BroadcastFn != nil {
		s.BroadcastFn(Event{Type: EventGameEnd, Result: &res})
	}
	if s.OnGameEnd != nil {
		s.OnGameEnd(res)
	}
}

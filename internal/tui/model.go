// Package tui renders a game in the terminal and translates key presses
// into board operations.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/game"
)

type state int

const (
	stateMenu state = iota
	statePlaying
	stateWon
)

// tickMsg drives the elapsed-time clock.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model for a solitaire game.
type Model struct {
	state      state
	difficulty engine.Difficulty
	keys       keyMap
	log        *logrus.Logger

	session   *game.Session
	snap      game.Snapshot
	startedAt time.Time
	elapsed   time.Duration
	score     int

	width  int
	height int

	// newRNG seeds each fresh deal. Swappable in tests.
	newRNG func() engine.RNG
	// OnGameEnd, when set, is installed on every session started from
	// the menu; callers use it to persist results.
	OnGameEnd func(game.Result)
}

// New builds a model starting at the difficulty menu.
func New(difficulty engine.Difficulty, logger *logrus.Logger) Model {
	return Model{
		state:      stateMenu,
		difficulty: difficulty,
		keys:       defaultKeyMap(),
		log:        logger,
		newRNG: func() engine.RNG {
			return engine.NewXorshift64(uint64(time.Now().UnixNano()))
		},
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state == statePlaying {
			m.elapsed = time.Since(m.startedAt)
		}
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case statePlaying:
			return m.updatePlaying(msg)
		case stateWon:
			return m.updateWon(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right),
		key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		if m.difficulty == engine.Easy {
			m.difficulty = engine.Hard
		} else {
			m.difficulty = engine.Easy
		}
	case key.Matches(msg, m.keys.Act):
		return m.startGame()
	}
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	sess, err := game.NewSession(m.difficulty, m.newRNG(), m.log)
	if err != nil {
		m.log.WithError(err).Error("failed to start game")
		return m, tea.Quit
	}
	sess.OnGameEnd = m.OnGameEnd
	m.session = sess
	m.snap = sess.Snapshot()
	m.startedAt = time.Now()
	m.elapsed = 0
	m.state = statePlaying
	return m, nil
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.session.Move(engine.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.session.Move(engine.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.session.Move(engine.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.session.Move(engine.DirRight)
	case key.Matches(msg, m.keys.Act):
		m.session.Act()
		if m.session.Won() {
			m.elapsed = time.Since(m.startedAt)
			m.snap = m.session.Snapshot()
			m.score = game.Score(m.snap.Moves, m.elapsed)
			m.state = stateWon
			return m, nil
		}
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
	case key.Matches(msg, m.keys.New):
		m.state = stateMenu
		m.session = nil
		return m, nil
	default:
		return m, nil
	}
	m.snap = m.session.Snapshot()
	return m, nil
}

func (m Model) updateWon(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.New) || key.Matches(msg, m.keys.Act) {
		m.state = stateMenu
		m.session = nil
	}
	return m, nil
}

package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestModel(t *testing.T, difficulty engine.Difficulty) Model {
	t.Helper()
	m := New(difficulty, testLogger())
	m.newRNG = func() engine.RNG { return engine.NewXorshift64(42) }
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMenuTogglesDifficulty(t *testing.T) {
	m := newTestModel(t, engine.Easy)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, engine.Hard, m.difficulty)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, engine.Easy, m.difficulty)
}

func TestMenuView(t *testing.T) {
	m := newTestModel(t, engine.Easy)
	out := m.View()
	assert.Contains(t, out, "Klondike")
	assert.Contains(t, out, "easy")
	assert.Contains(t, out, "hard")
}

func TestStartGameDealsBoard(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, statePlaying, m.state)
	assert.Equal(t, 24, m.snap.StockSize)
	assert.Empty(t, m.snap.Waste)
	for col := 0; col < engine.TableauColumns; col++ {
		assert.Len(t, m.snap.Tableau[col], col+1)
	}
}

func TestMoveSkipsEmptyWaste(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.snap.Cursor.Row)
	assert.Equal(t, 2, m.snap.Cursor.Col)
}

func TestDrawFromStock(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 21, m.snap.StockSize)
	assert.Len(t, m.snap.Waste, 3)
}

func TestSelectAndCancel(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// The first column's single card is face-up at row 1.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.snap.Cursor.Row)
	require.Equal(t, 0, m.snap.Cursor.Col)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.snap.Selected)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.snap.Selected)
}

func TestNewReturnsToMenu(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, statePlaying, m.state)

	m = press(t, m, keyRune('n'))
	assert.Equal(t, stateMenu, m.state)
	assert.Nil(t, m.session)
}

func TestWonScreenBackToMenu(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.state = stateWon
	m.score = 9000

	out := m.View()
	assert.Contains(t, out, "You won")

	m = press(t, m, keyRune('n'))
	assert.Equal(t, stateMenu, m.state)
}

func TestBoardViewShowsStatus(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	assert.Contains(t, out, "hard")
	assert.Contains(t, out, "moves 0")
	assert.True(t, strings.Contains(out, "[##]"))
}

func TestWasteFanShowsRecentDraws(t *testing.T) {
	m := newTestModel(t, engine.Hard)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.Len(t, m.snap.Waste, 3)

	out := m.View()
	for _, c := range m.snap.Waste[:2] {
		assert.Contains(t, out, c.Rank+suitGlyphs[c.Suit])
	}
	top := m.snap.Waste[2]
	assert.Contains(t, out, "["+top.Rank+suitGlyphs[top.Suit]+"]")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, engine.Easy)
	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

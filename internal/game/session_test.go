package game

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zakrzewiaczek/CLI-Solitaire/engine"
)

// mockBroadcaster captures session events for assertions.
type mockBroadcaster struct {
	mu     sync.Mutex
	events []Event
}

func (mb *mockBroadcaster) fn(ev Event) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.events = append(mb.events, ev)
}

func (mb *mockBroadcaster) last() *Event {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if len(mb.events) == 0 {
		return nil
	}
	return &mb.events[len(mb.events)-1]
}

func (mb *mockBroadcaster) findByType(t EventType) *Event {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for i := range mb.events {
		if mb.events[i].Type == t {
			return &mb.events[i]
		}
	}
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestSession(t *testing.T, diff engine.Difficulty) (*Session, *mockBroadcaster) {
	t.Helper()
	s, err := NewSession(diff, engine.NewXorshift64(42), testLogger())
	require.NoError(t, err)
	mb := &mockBroadcaster{}
	s.BroadcastFn = mb.fn
	return s, mb
}

func TestNewSessionDealsBoard(t *testing.T) {
	s, _ := newTestSession(t, engine.Hard)

	snap := s.Snapshot()
	assert.Equal(t, "hard", snap.Difficulty)
	assert.Equal(t, engine.DeckSize-engine.TableauCards, snap.StockSize)
	require.Len(t, snap.Tableau, engine.TableauColumns)
	for col, pile := range snap.Tableau {
		assert.Len(t, pile, col+1, "column %d", col+1)
	}
	assert.False(t, snap.Won)
}

func TestActBroadcastsState(t *testing.T) {
	s, mb := newTestSession(t, engine.Easy)

	s.Act() // draw one card from the stock
	ev := mb.last()
	require.NotNil(t, ev)
	require.Equal(t, EventState, ev.Type)
	require.NotNil(t, ev.State)
	assert.Len(t, ev.State.Waste, 1)
	assert.True(t, ev.State.Waste[0].FaceUp)
}

func TestSnapshotHidesFaceDownCards(t *testing.T) {
	s, _ := newTestSession(t, engine.Hard)

	snap := s.Snapshot()
	last := len(snap.Tableau[6]) - 1
	for i, c := range snap.Tableau[6] {
		if i == last {
			assert.True(t, c.FaceUp)
			assert.NotEmpty(t, c.Rank)
		} else {
			assert.False(t, c.FaceUp)
			assert.Empty(t, c.Rank, "face-down rank leaked at slot %d", i)
			assert.Empty(t, c.Suit, "face-down suit leaked at slot %d", i)
		}
	}
}

func TestMoveUpdatesCursor(t *testing.T) {
	s, mb := newTestSession(t, engine.Easy)

	s.Move(engine.DirRight) // empty waste bounces to the first foundation
	ev := mb.last()
	require.NotNil(t, ev)
	assert.Equal(t, CursorView{Row: 0, Col: 2}, ev.State.Cursor)
}

func TestCancelClearsSelection(t *testing.T) {
	s, mb := newTestSession(t, engine.Easy)

	// Select the exposed card of the first column.
	s.Move(engine.DirDown)
	s.Act()
	require.NotNil(t, mb.last().State.Selected)

	s.Cancel()
	assert.Nil(t, mb.last().State.Selected)
}

func TestRestartResetsGame(t *testing.T) {
	s, mb := newTestSession(t, engine.Easy)
	s.Act() // draw so the state differs from a fresh deal

	require.NoError(t, s.Restart(engine.Hard, engine.NewXorshift64(7)))
	ev := mb.last()
	require.NotNil(t, ev)
	assert.Equal(t, "hard", ev.State.Difficulty)
	assert.Empty(t, ev.State.Waste)
	assert.Zero(t, ev.State.Moves)
}

func TestGameEndFiresOnce(t *testing.T) {
	s, mb := newTestSession(t, engine.Easy)
	var results []Result
	s.OnGameEnd = func(r Result) { results = append(results, r) }

	// Swap in a won position and let Act detect it. A confirm on a
	// foundation with no selection is a no-op, so the board itself is
	// left as crafted.
	var p engine.Position
	for suit := engine.SuitClubs; suit <= engine.SuitDiamonds; suit++ {
		for r := engine.RankAce; r <= engine.RankKing; r++ {
			p.Foundations[suit] = append(p.Foundations[suit], engine.Card{Rank: r, Suit: suit, FaceUp: true})
		}
	}
	won, err := engine.NewBoardFromPosition(p, engine.Easy, engine.NewXorshift64(1))
	require.NoError(t, err)
	s.mu.Lock()
	s.board = won
	s.mu.Unlock()

	s.Move(engine.DirRight)
	s.Act()
	s.Act()

	require.Len(t, results, 1, "OnGameEnd must fire exactly once")
	res := results[0]
	assert.True(t, res.Won)
	assert.Equal(t, s.ID, res.GameID)
	assert.Equal(t, "easy", res.Difficulty)

	end := mb.findByType(EventGameEnd)
	require.NotNil(t, end)
	require.NotNil(t, end.Result)
	assert.Equal(t, res.Score, end.Result.Score)
	assert.True(t, s.Won())
}

func TestScoreFormula(t *testing.T) {
	assert.Equal(t, 10000, Score(0, 0))
	assert.Equal(t, 10000-15*100-60, Score(100, time.Minute))
	assert.Zero(t, Score(100000, time.Hour), "score floors at zero")
}

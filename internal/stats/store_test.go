package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zakrzewiaczek/CLI-Solitaire/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func result(moves, score int, won bool) game.Result {
	return game.Result{
		GameID:     uuid.New(),
		Difficulty: "easy",
		Moves:      moves,
		Duration:   120,
		Won:        won,
		Score:      score,
		FinishedAt: time.Now(),
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := newTestStore(t)

	sum, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Played)
	assert.Zero(t, sum.Won)
	assert.Zero(t, sum.BestScore)
}

func TestRecordAndSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, result(80, 8000, true)))
	require.NoError(t, s.Record(ctx, result(120, 6500, true)))
	require.NoError(t, s.Record(ctx, result(40, 0, false)))

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Played)
	assert.Equal(t, 2, sum.Won)
	assert.Equal(t, 8000, sum.BestScore)
	assert.Equal(t, 240, sum.TotalMoves)
}

func TestRecordDuplicateIDFails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := result(10, 100, true)
	require.NoError(t, s.Record(ctx, r))
	assert.Error(t, s.Record(ctx, r), "primary key must reject duplicates")
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesParents(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".arcade", "scores.db"))
	assert.NoError(t, err)
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("blocks", score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("lightcycle", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("blocks", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.Equal(t, "blocks", scores[0].GameID)
	assert.False(t, scores[0].CreatedAt.IsZero())

	limited, err := store.TopScores("blocks", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blocks")
	require.NoError(t, err)
	assert.Zero(t, high, "no scores yet")

	store.SaveScore("blocks", 100)
	store.SaveScore("blocks", 300)
	store.SaveScore("blocks", 200)

	high, err = store.HighScore("blocks")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("blocks", 100)
	store.SaveScore("lightcycle", 40)

	require.NoError(t, store.ClearScores("blocks"))

	scores, err := store.TopScores("blocks", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	other, err := store.TopScores("lightcycle", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1, "other games keep their scores")
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("blocks")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveScore("blocks", 100)
	store.SaveScore("blocks", 300)

	stats, err := store.Stats("blocks")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
}

func TestStoreSaveRound(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound("lightcycle", core.RoundSummary{
		Winner:     core.Player2,
		Claimed:    map[core.PlayerID]int{core.Player1: 31, core.Player2: 47},
		CollisionX: 12,
		CollisionY: 5,
		Duration:   4.25,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err, "round IDs are UUIDs")

	r, err := store.RoundByID(id)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "lightcycle", r.GameID)
	assert.Equal(t, core.Player2, r.Winner)
	assert.Equal(t, 31, r.Claimed1)
	assert.Equal(t, 47, r.Claimed2)
	assert.Equal(t, 12, r.CollisionX)
	assert.Equal(t, 5, r.CollisionY)
	assert.InDelta(t, 4.25, r.Duration, 1e-9)
}

func TestStoreRoundByIDMissing(t *testing.T) {
	store := openTestStore(t)

	r, err := store.RoundByID(uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestStoreRecentRoundsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := range 3 {
		id, err := store.SaveRound("lightcycle", core.RoundSummary{CollisionX: i})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := store.SaveRound("other", core.RoundSummary{})
	require.NoError(t, err)

	rounds, err := store.RecentRounds("lightcycle", 10)
	require.NoError(t, err)
	require.Len(t, rounds, 3)
	assert.Equal(t, ids[2], rounds[0].ID)
	assert.Equal(t, ids[0], rounds[2].ID)
	assert.Equal(t, core.NoPlayer, rounds[0].Winner, "nil claims and no winner record a draw")

	limited, err := store.RecentRounds("lightcycle", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, ids[2], limited[0].ID)
}

func TestStoreWinCounts(t *testing.T) {
	store := openTestStore(t)

	for _, w := range []core.PlayerID{core.Player1, core.Player1, core.Player2, core.NoPlayer} {
		_, err := store.SaveRound("lightcycle", core.RoundSummary{Winner: w})
		require.NoError(t, err)
	}

	counts, err := store.WinCounts("lightcycle")
	require.NoError(t, err)
	assert.Equal(t, map[core.PlayerID]int{core.Player1: 2, core.Player2: 1, core.NoPlayer: 1}, counts)

	none, err := store.WinCounts("blocks")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	store.SaveScore("blocks", 42)
	id, err := store.SaveRound("lightcycle", core.RoundSummary{Winner: core.Player1})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("blocks")
	require.NoError(t, err)
	assert.Equal(t, 42, high)

	r, err := store.RoundByID(id)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, core.Player1, r.Winner)
}

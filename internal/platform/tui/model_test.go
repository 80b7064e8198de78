package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// scriptedGame returns queued results from Step and records what it saw.
type scriptedGame struct {
	results []core.StepResult
	dts     []float64
	inputs  []core.MultiInputFrame
	resets  int
	state   core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{InMenu: true}
}

func (g *scriptedGame) Step(dt float64, in core.MultiInputFrame) core.StepResult {
	g.dts = append(g.dts, dt)
	g.inputs = append(g.inputs, in.Clone())
	if len(g.results) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.results[0]
	g.results = g.results[1:]
	g.state = r.State
	return r
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }

func (g *scriptedGame) State() core.GameState { return g.state }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(g *scriptedGame, store *storage.Store) Model {
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 4, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func tick(t *testing.T, m Model, at time.Time) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelMeasuresFrameTime(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)
	start := time.Now()

	m, _ = tick(t, m, start)
	m, _ = tick(t, m, start.Add(40*time.Millisecond))
	_, _ = tick(t, m, start.Add(10*time.Second))

	require.Len(t, g.dts, 3)
	assert.Zero(t, g.dts[0], "first frame has no previous timestamp")
	assert.InDelta(t, 0.04, g.dts[1], 1e-9)
	assert.InDelta(t, maxFrameGap.Seconds(), g.dts[2], 1e-9, "stalls are clamped")
}

func TestModelForwardsKeysOnce(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)
	now := time.Now()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	next, _ = m.Update(runeKey('d'))
	m = next.(Model)

	m, _ = tick(t, m, now)
	_, _ = tick(t, m, now.Add(time.Millisecond))

	require.Len(t, g.inputs, 2)
	assert.True(t, g.inputs[0].Player1().Has(core.ActionLeft))
	assert.True(t, g.inputs[0].Player2().Has(core.ActionRight))
	assert.False(t, g.inputs[1].Any(core.ActionLeft), "input is cleared after each tick")
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)

	next, cmd := m.Update(runeKey('q'))

	assert.True(t, next.(Model).IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	over := core.StepResult{State: core.GameState{Score: 120, GameOver: true}}
	g := &scriptedGame{results: []core.StepResult{
		over, over, over,
		{State: core.GameState{}},
		{State: core.GameState{Score: 80, GameOver: true}},
	}}
	m := newTestModel(g, store)
	now := time.Now()

	for i := range 5 {
		m, _ = tick(t, m, now.Add(time.Duration(i)*time.Millisecond))
	}

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 120, scores[0].Score)
	assert.Equal(t, 80, scores[1].Score)
}

func TestModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{results: []core.StepResult{{State: core.GameState{GameOver: true}}}}
	m := newTestModel(g, store)

	_, _ = tick(t, m, time.Now())

	high, err := store.HighScore("scripted")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestModelSavesRounds(t *testing.T) {
	store := openStore(t)
	summary := &core.RoundSummary{
		Winner:     core.Player1,
		Claimed:    map[core.PlayerID]int{core.Player1: 9, core.Player2: 7},
		CollisionX: 3,
		CollisionY: 4,
		Duration:   1.5,
	}
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 9, GameOver: true}, Round: summary},
		{State: core.GameState{Score: 9, GameOver: true}},
	}}
	m := newTestModel(g, store)
	now := time.Now()

	m, _ = tick(t, m, now)
	m, _ = tick(t, m, now.Add(time.Millisecond))

	require.NotEmpty(t, m.LastRound())
	rounds, err := store.RecentRounds("scripted", 10)
	require.NoError(t, err)
	require.Len(t, rounds, 1, "a round is saved only on the tick it ends")
	assert.Equal(t, m.LastRound(), rounds[0].ID)
	assert.Equal(t, 9, rounds[0].Claimed1)
}

func TestModelLeavesWhenGameQuits(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{{State: core.GameState{InMenu: true}, Quit: true}}}
	m := newTestModel(g, nil)

	m, cmd := tick(t, m, time.Now())

	assert.True(t, m.Done())
	assert.False(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEmbeddedModelDoesNotQuitProgram(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{{Quit: true}}}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 4}, embedded())
	m.Init()

	m, cmd := tick(t, m, time.Now())

	assert.True(t, m.Done())
	assert.Nil(t, cmd)
}

func TestModelResizeRebuildsOnlyInMenu(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)
	require.Equal(t, 1, g.resets)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(Model)
	assert.Equal(t, 2, g.resets)

	g.state = core.GameState{}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 12})
	m = next.(Model)
	assert.Equal(t, 2, g.resets, "a running round keeps its arena")

	assert.Contains(t, m.View(), "scripted")
}

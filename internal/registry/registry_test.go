package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

type stubGame struct {
	id, title string
	resets    int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{InMenu: true} }
func (g *stubGame) Step(float64, core.MultiInputFrame) core.StepResult {
	return core.StepResult{State: g.State()}
}

type describedGame struct {
	stubGame
}

func (g *describedGame) Description() string { return "Two riders, one grid" }
func (g *describedGame) Players() int { return 2 }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub", title: "Stub"} })

	assert.True(t, Exists("zz-stub"))
	assert.False(t, Exists("zz-missing"))

	g, err := Create("zz-stub")
	require.NoError(t, err)
	assert.Equal(t, "Stub", g.Title())

	other, err := Create("zz-stub")
	require.NoError(t, err)
	assert.NotSame(t, g, other, "each Create builds a fresh game")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("zz-nope")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.ErrorContains(t, err, `unknown game "zz-nope"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() Game { return &stubGame{id: "zz-dup", title: "Dup"} }
	Register("zz-dup", f)

	assert.Panics(t, func() { Register("zz-dup", f) })
}

func TestListIsSorted(t *testing.T) {
	Register("zz-b", func() Game { return &stubGame{id: "zz-b", title: "B"} })
	Register("zz-a", func() Game { return &stubGame{id: "zz-a", title: "A"} })

	list := List()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
	assert.Contains(t, list, GameInfo{ID: "zz-a", Title: "A", Players: 1})
}

func TestListCarriesDescriptions(t *testing.T) {
	Register("zz-described", func() Game {
		return &describedGame{stubGame{id: "zz-described", title: "Described"}}
	})

	var info GameInfo
	for _, g := range List() {
		if g.ID == "zz-described" {
			info = g
		}
	}
	assert.Equal(t, "Two riders, one grid", info.Description)
	assert.Equal(t, 2, info.Players)
}

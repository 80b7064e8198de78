package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/grid-arcade/internal/config"
)

func sendKeys(m DifficultyModel, keys ...tea.KeyMsg) DifficultyModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(DifficultyModel)
	}
	return m
}

func TestDifficultyDefaultsToNormal(t *testing.T) {
	m := sendKeys(NewDifficultyModel("Blocks", 80, 24), tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, config.DifficultyNormal, *m.Selected())
}

func TestDifficultyCursorClamps(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	m := sendKeys(NewDifficultyModel("Blocks", 80, 24), down, down, down, down, down, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, config.DifficultyFixed, *m.Selected())

	up := tea.KeyMsg{Type: tea.KeyUp}
	m = sendKeys(NewDifficultyModel("Blocks", 80, 24), up, down, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, config.DifficultyEasy, *m.Selected())
}

func TestDifficultyBackAndQuit(t *testing.T) {
	m := sendKeys(NewDifficultyModel("Blocks", 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.WantsBack())
	assert.Nil(t, m.Selected())

	m = sendKeys(NewDifficultyModel("Blocks", 80, 24), runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestDifficultyView(t *testing.T) {
	out := NewDifficultyModel("Laser Bikes", 80, 24).View()

	assert.Contains(t, out, "LASER BIKES")
	assert.Contains(t, out, "> Normal")
	assert.Contains(t, out, "Fixed speed")
}

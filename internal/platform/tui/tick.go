// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/sim/clock"
)

// maxFrameGap caps the simulated time of a single frame so a stalled
// terminal does not fast-forward the game.
const maxFrameGap = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(clock.FrameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

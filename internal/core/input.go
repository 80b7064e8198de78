package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow / W - steer up, rotate (Blocks), menu up
	ActionDown           // Down arrow / S - steer down, soft drop (Blocks), menu down
	ActionLeft           // Left arrow / A - steer or shift left
	ActionRight          // Right arrow / D - steer or shift right
	ActionRotate         // X, Z - rotate the falling piece
	ActionDrop           // Space - hard drop
	ActionConfirm        // Enter - confirm selection / start next round
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionBrake          // Slash / E - slow the bike while held
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionDrop:
		return "Drop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionBrake:
		return "Brake"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a local player. The zero value means "nobody".
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// String returns a short label for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "-"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MultiInputFrame contains input from all local players for a single tick.
// The platform builds it from the keyboard; games never see raw keys.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Set marks an action for one player.
func (m *MultiInputFrame) Set(id PlayerID, a Action) {
	frame := m.Player(id)
	frame.Set(a)
	m.SetPlayer(id, frame)
}

// Player1 returns the input frame for Player 1 (convenience method).
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Player2 returns the input frame for Player 2 (convenience method).
func (m MultiInputFrame) Player2() InputFrame {
	return m.Player(Player2)
}

// Any reports whether any player triggered the action.
func (m MultiInputFrame) Any(a Action) bool {
	for _, frame := range m.ByPlayer {
		if frame.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	clone := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		clone.ByPlayer[id] = frame.Clone()
	}
	return clone
}

// InputSampler keeps the current and previous input snapshots so callers can
// tell a fresh key-down (Pressed) from a key that is still held (Held).
type InputSampler struct {
	prev MultiInputFrame
	cur  MultiInputFrame
}

// NewInputSampler creates a sampler with empty snapshots.
func NewInputSampler() *InputSampler {
	return &InputSampler{
		prev: NewMultiInputFrame(),
		cur:  NewMultiInputFrame(),
	}
}

// Sample records the snapshot for this tick. The previous current snapshot
// becomes the comparison baseline.
func (s *InputSampler) Sample(in MultiInputFrame) {
	s.prev = s.cur
	s.cur = in.Clone()
}

// Held reports whether the player has the action set in the current snapshot.
func (s *InputSampler) Held(id PlayerID, a Action) bool {
	return s.cur.Player(id).Has(a)
}

// Pressed reports a key-down transition: set now, not set last tick.
func (s *InputSampler) Pressed(id PlayerID, a Action) bool {
	return s.cur.Player(id).Has(a) && !s.prev.Player(id).Has(a)
}

// PressedAny reports a key-down transition of the action for any player.
func (s *InputSampler) PressedAny(a Action) bool {
	for id := range s.cur.ByPlayer {
		if s.Pressed(id, a) {
			return true
		}
	}
	return false
}

// HeldAny reports whether any player has the action set in the current
// snapshot.
func (s *InputSampler) HeldAny(a Action) bool {
	return s.cur.Any(a)
}

// Reset forgets both snapshots.
func (s *InputSampler) Reset() {
	s.prev = NewMultiInputFrame()
	s.cur = NewMultiInputFrame()
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// holdWindow is how long a direction counts as held after its last key
// event. Terminals report presses and auto-repeats but never releases, so
// this has to cover the initial auto-repeat delay.
const holdWindow = 600 * time.Millisecond

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Backspace key.Binding
	Pause     key.Binding
	Reset     key.Binding
	FPS       key.Binding
	Quit      key.Binding
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete")),
		Pause:     key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		FPS:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fps")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Pause, k.Reset, k.FPS, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// It keeps the emulated held direction between ticks.
type KeyMapper struct {
	keys     GameKeyMap
	held     core.Action
	heldLeft time.Duration
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Backspace):
		return core.ActionBackspace
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Reset):
		return core.ActionReset
	case key.Matches(msg, km.keys.FPS):
		return core.ActionToggleFPS
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// MapKeyToFrame records a key message into the pending frame.
//
// In text mode printable keys become typed characters and only arrows,
// enter, backspace and ctrl+c keep their meaning.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, text bool) {
	if text {
		switch msg.Type {
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				frame.Type(r)
			}
			return
		case tea.KeySpace:
			frame.Type(' ')
			return
		case tea.KeyCtrlC:
			frame.Set(core.ActionQuit)
			return
		case tea.KeyEnter:
			frame.Set(core.ActionConfirm)
			return
		case tea.KeyBackspace:
			frame.Set(core.ActionBackspace)
			return
		}
	}

	action := km.MapKey(msg)
	if action == core.ActionNone {
		return
	}
	frame.Set(action)
	if isDirection(action) {
		km.held = action
		km.heldLeft = holdWindow
	}
}

// ApplyHeld marks the emulated held direction on frame.
func (km *KeyMapper) ApplyHeld(frame *core.InputFrame) {
	if km.held != core.ActionNone {
		frame.Hold(km.held)
	}
}

// Elapse counts down the held window by one frame.
func (km *KeyMapper) Elapse(d time.Duration) {
	if km.held == core.ActionNone {
		return
	}
	km.heldLeft -= d
	if km.heldLeft <= 0 {
		km.held = core.ActionNone
		km.heldLeft = 0
	}
}

// Release drops the held direction.
func (km *KeyMapper) Release() {
	km.held = core.ActionNone
	km.heldLeft = 0
}

func isDirection(a core.Action) bool {
	for _, d := range core.DirectionPriority {
		if a == d {
			return true
		}
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

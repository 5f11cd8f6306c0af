package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminals report presses but never releases. A held action stays latched
// for a number of ticks after each press; keyboard auto-repeat keeps
// refreshing it while the key is down.
const (
	holdFirst  = 30 // covers the delay before auto-repeat starts
	holdJump   = 12 // short, so a tap gives a short hop
	holdRepeat = 8  // refresh on each repeated press
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Dash    key.Binding
	Shoot   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Dash, k.Shoot, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Dash, k.Shoot},
		{k.Pause, k.Restart, k.Back},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k", "z"),
			key.WithHelp("space/↑", "jump"),
		),
		Dash: key.NewBinding(
			key.WithKeys("x", "shift+right", "shift+left"),
			key.WithHelp("x", "dash"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("c", "f"),
			key.WithHelp("c/f", "shuriken"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu (paused)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// the latches of held actions between ticks.
type KeyMapper struct {
	keys GameKeyMap
	held map[core.Action]int // remaining ticks
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		keys: DefaultGameKeyMap(),
		held: make(map[core.Action]int),
	}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Dash):
		return core.ActionDash, false
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Press applies a key press. Directions and jump are latched; jump fires
// only when it was not already held. Everything else goes straight into
// the frame. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
		km.hold(action, holdFirst)
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
		km.hold(action, holdFirst)
	case core.ActionJump:
		if km.held[core.ActionJump] == 0 {
			frame.Set(core.ActionJump)
		}
		km.hold(action, holdJump)
	default:
		frame.Set(action)
	}
	return false
}

func (km *KeyMapper) hold(a core.Action, first int) {
	if n, ok := km.held[a]; ok {
		km.held[a] = max(n, holdRepeat)
		return
	}
	km.held[a] = first
}

// Tick writes held directions into the frame and ages every latch. A jump
// latch that runs out produces ActionJumpRelease.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	for a, n := range km.held {
		if a != core.ActionJump {
			frame.Set(a)
		}
		if n--; n > 0 {
			km.held[a] = n
			continue
		}
		delete(km.held, a)
		if a == core.ActionJump {
			frame.Set(core.ActionJumpRelease)
		}
	}
}

// Held reports whether an action is currently latched.
func (km *KeyMapper) Held(a core.Action) bool {
	return km.held[a] > 0
}

// Reset drops every latch.
func (km *KeyMapper) Reset() {
	clear(km.held)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
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

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nightescape/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the actions it triggers.
// Shifted arrows run and sprint at once. Returns whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	case "left", "a":
		return []core.Action{core.ActionLeft}, false
	case "right", "d":
		return []core.Action{core.ActionRight}, false
	case "shift+left", "A":
		return []core.Action{core.ActionLeft, core.ActionSprint}, false
	case "shift+right", "D":
		return []core.Action{core.ActionRight, core.ActionSprint}, false
	case " ", "up", "w":
		return []core.Action{core.ActionJump}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	case "y":
		return []core.Action{core.ActionReplay}, false
	case "esc", "b":
		return []core.Action{core.ActionBack}, false
	}
	return nil, false
}

// HoldTracker turns key presses into held actions. Terminals only report
// presses (plus auto-repeat), so a movement action stays held for a window
// of ticks after its last press. Everything else lasts one tick.
type HoldTracker struct {
	window int
	left   map[core.Action]int
}

// DefaultHoldTicks covers the gap between terminal auto-repeat events.
const DefaultHoldTicks = 10

// NewHoldTracker creates a tracker holding movement for window ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	return &HoldTracker{window: window, left: make(map[core.Action]int)}
}

func isHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionSprint
}

// Press records an action. Pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}

	if isHeld(a) {
		h.left[a] = h.window
		return
	}
	h.left[a] = 1
}

// Fill sets every action still held into the frame and ages them by a tick.
func (h *HoldTracker) Fill(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// Held reports whether an action would be set on the next tick.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.left[a] > 0
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.left)
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
	}
	return MenuActionNone
}

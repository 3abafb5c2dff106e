package core

// Action is a semantic game action. Frontends translate their own key
// events into actions; the game only sees these.
type Action uint8

const (
	ActionNone Action = iota

	// movement, sampled every tick
	ActionLeft   // A, Left arrow
	ActionRight  // D, Right arrow
	ActionJump   // Space, W, Up
	ActionSprint // Shift, modifies Left/Right while held

	// lifecycle, acted on once per press
	ActionConfirm // Enter: start a run from the title screen
	ActionRestart // R: back to the title screen
	ActionReplay  // Y: reset and start immediately
	ActionBack    // Esc: leave to the menu
	ActionQuit    // Q, Ctrl+C

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Jump", "Sprint",
	"Confirm", "Restart", "Replay", "Back", "Quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions active during one simulation tick. It
// is a plain value, so a frame handed to Step cannot change under the game.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as active for this frame. ActionNone and unknown
// actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a is active this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions lists the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear drops every action so the frame can be refilled.
func (f *InputFrame) Clear() {
	f.bits = 0
}

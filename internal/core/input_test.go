package core

import (
	"slices"
	"testing"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(Action(200))
	if !f.Has(ActionJump) || !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("unexpected frame %v", f.Actions())
	}
	if got := f.Actions(); !slices.Equal(got, []Action{ActionLeft, ActionJump}) {
		t.Errorf("Actions() = %v", got)
	}

	held := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions behind")
	}
	if !held.Has(ActionJump) {
		t.Error("a copied frame should not see later changes")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionSprint: "Sprint",
		ActionQuit:   "Quit",
		Action(99):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", uint8(a), got, want)
		}
	}
}

package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionStart)
	if !f.Has(ActionLeft) || !f.Has(ActionStart) || f.Has(ActionRight) {
		t.Errorf("unexpected frame contents: %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionIsHeld(t *testing.T) {
	held := map[Action]bool{ActionLeft: true, ActionRight: true}
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.IsHeld() != held[a] {
			t.Errorf("%s.IsHeld() = %v", a, a.IsHeld())
		}
		if a.String() == "Unknown" {
			t.Errorf("action %d has no name", a)
		}
	}
}

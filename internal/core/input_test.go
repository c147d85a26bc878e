package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionShoot)
	if !f.Has(ActionLeft) || !f.Has(ActionShoot) {
		t.Error("frame should have Left and Shoot")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not have Right")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionShoot) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionShoot)
	if !f.Has(ActionShoot) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionShoot.String() != "Shoot" {
		t.Errorf("ActionShoot.String() = %q", ActionShoot.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

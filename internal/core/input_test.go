package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("empty frame should not have Jump")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("frame should have Jump after Set")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated Set should store one action, got %d", len(f.Actions))
	}

	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestFrameDelta(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FrameDelta() <= 0 {
		t.Fatal("FrameDelta should be positive")
	}
	cfg.TickRate = 0
	if cfg.FrameDelta() != DefaultConfig().FrameDelta() {
		t.Error("zero tick rate should fall back to 60")
	}
}

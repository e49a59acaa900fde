package core

import "testing"

func TestTicksFor(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		ms       int
		expected int
	}{
		{"zero duration", 30, 0, 0},
		{"negative duration", 30, -100, 0},
		{"exact", 20, 500, 10},
		{"rounds up", 30, 300, 9},
		{"short delay takes a tick", 30, 1, 1},
		{"no tick rate", 0, 300, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.tickRate}
			if got := cfg.TicksFor(tc.ms); got != tc.expected {
				t.Errorf("TicksFor(%d) = %d, expected %d", tc.ms, got, tc.expected)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionUp) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionHint)
	if !f.Has(ActionLeft) || !f.Has(ActionHint) || f.Has(ActionRight) {
		t.Errorf("Actions = %v, expected Left and Hint only", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionMute.String() != "Mute" {
		t.Errorf("ActionMute.String() = %q", ActionMute.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

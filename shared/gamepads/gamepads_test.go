package gamepads

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Family
	}{
		{"Xbox Wireless Controller", FamilyXbox},
		{"Sony PS4 Controller", FamilyPlayStation},
		{"DualSense Wireless Controller", FamilyPlayStation},
		{"PLAYSTATION(R)3 Controller", FamilyPlayStation},
		{"8BitDo Pro 2", FamilyXbox},
		{"", FamilyXbox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestStickDirection(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Direction
	}{
		{"centred", 0, 0, 0},
		{"inside deadzone", 0.2, -0.2, 0},
		{"left", -0.8, 0, Left},
		{"right", 1, 0.1, Right},
		{"up", 0, -0.5, Up},
		{"down right", 0.6, 0.6, Down | Right},
		{"up left", -1, -1, Up | Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StickDirection(tt.x, tt.y, 0.25); got != tt.want {
				t.Errorf("StickDirection(%v, %v) = %04b, want %04b", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDirectionHas(t *testing.T) {
	d := Up | Left
	if !d.Has(Up) || !d.Has(Left) || !d.Has(Up|Left) {
		t.Errorf("%04b should hold up and left", d)
	}
	if d.Has(Down) || d.Has(Up|Right) {
		t.Errorf("%04b should not hold down or right", d)
	}
	if d.Has(0) {
		t.Error("Has(0) = true")
	}
}

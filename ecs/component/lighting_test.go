package component

import "testing"

func TestNextLightingMode(t *testing.T) {
	tests := []struct {
		name      string
		mode      LightingMode
		global    bool
		lantern   bool
		lanternOn bool
		want      LightingMode
	}{
		{"dark_global_to_light", LightingDark, true, false, false, LightingLight},
		{"lantern_global_to_light", LightingLantern, true, false, true, LightingLight},
		{"light_global_lantern_on", LightingLight, true, false, true, LightingLantern},
		{"light_global_lantern_off", LightingLight, true, false, false, LightingDark},
		{"dark_lantern_toggle", LightingDark, false, true, true, LightingLantern},
		{"lantern_lantern_toggle", LightingLantern, false, true, false, LightingDark},
		{"light_ignores_lantern", LightingLight, false, true, true, LightingLight},
		{"global_wins_same_frame_from_light", LightingLight, true, true, true, LightingLantern},
		{"global_wins_same_frame_from_dark", LightingDark, true, true, true, LightingLight},
		{"no_trigger", LightingLantern, false, false, true, LightingLantern},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextLightingMode(tc.mode, tc.global, tc.lantern, tc.lanternOn); got != tc.want {
				t.Fatalf("NextLightingMode(%v, %v, %v, %v) = %v, want %v", tc.mode, tc.global, tc.lantern, tc.lanternOn, got, tc.want)
			}
		})
	}
}

func TestLightOnlyReachableThroughGlobalTrigger(t *testing.T) {
	modes := []LightingMode{LightingDark, LightingLantern, LightingLight}
	bools := []bool{false, true}

	for _, mode := range modes {
		for _, global := range bools {
			for _, lantern := range bools {
				for _, on := range bools {
					got := NextLightingMode(mode, global, lantern, on)
					if got != LightingDark && got != LightingLantern && got != LightingLight {
						t.Fatalf("unknown mode %v", got)
					}
					if got == LightingLight && mode != LightingLight && !global {
						t.Fatalf("%v entered Light without the global trigger", mode)
					}
					if got != LightingLight && mode == LightingLight && !global {
						t.Fatalf("Light left without the global trigger")
					}
				}
			}
		}
	}
}

func TestOverlayFrame(t *testing.T) {
	tests := []struct {
		mode    LightingMode
		frame   int
		visible bool
	}{
		{LightingDark, 1, true},
		{LightingLantern, 0, true},
		{LightingLight, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			frame, visible := OverlayFrame(tc.mode)
			if frame != tc.frame || visible != tc.visible {
				t.Fatalf("got frame=%d visible=%v, want frame=%d visible=%v", frame, visible, tc.frame, tc.visible)
			}
		})
	}
}

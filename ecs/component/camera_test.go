package component

import (
	"math"
	"testing"

	"github.com/milk9111/contour/common"
)

func TestCameraRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
	}{
		{"default", Camera{}},
		{"offset", Camera{X: 100, Y: -40, Zoom: 1}},
		{"zoomed", Camera{X: 12, Y: 30, Zoom: 2.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := tc.cam.WorldToScreen(tc.cam.X, tc.cam.Y)
			if sx != common.BaseWidth/2 || sy != common.BaseHeight/2 {
				t.Fatalf("camera target drawn at (%v,%v), want screen center", sx, sy)
			}
			wx, wy := tc.cam.ScreenToWorld(tc.cam.WorldToScreen(37, 81))
			if math.Abs(wx-37) > 1e-9 || math.Abs(wy-81) > 1e-9 {
				t.Fatalf("round trip gave (%v,%v)", wx, wy)
			}
		})
	}
}

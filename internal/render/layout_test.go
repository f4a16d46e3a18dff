package render

import (
	"math"
	"testing"

	"idle-racer/internal/track"
)

func TestLayout(t *testing.T) {
	cases := []struct {
		w, h   int
		panel  int
		cx, cy float64
		radius float64
	}{
		{w: 1280, h: 720, panel: 380, cx: 450, cy: 360, radius: 251},
		{w: 1920, h: 1080, panel: 422, cx: 749, cy: 540, radius: 378},
		{w: 3000, h: 1000, panel: 560, cx: 1220, cy: 500, radius: 350},
		{w: 400, h: 600, panel: 380, cx: 10, cy: 300, radius: 70},
	}
	for _, tc := range cases {
		g := Layout(tc.w, tc.h)
		if g.PanelWidth != tc.panel || g.CX != tc.cx || g.CY != tc.cy || g.Radius != tc.radius {
			t.Fatalf("Layout(%d, %d) = %+v", tc.w, tc.h, g)
		}
		if g.PanelX(tc.w) != tc.w-tc.panel {
			t.Fatalf("panel x mismatch for width %d", tc.w)
		}
	}
}

func TestOutlineFollowsShape(t *testing.T) {
	g := Layout(1280, 720)
	pts := g.Outline(track.ShapeCircle, 64)
	if len(pts) != 64 {
		t.Fatalf("expected 64 points, got %d", len(pts))
	}
	for i, p := range pts {
		d := math.Hypot(p[0]-g.CX, p[1]-g.CY)
		if math.Abs(d-g.Radius) > 1e-9 {
			t.Fatalf("point %d off the circle: distance %v", i, d)
		}
	}
	if n := len(g.Outline(track.ShapeOval, 1)); n != 2 {
		t.Fatalf("expected outline clamp to 2 points, got %d", n)
	}
}

// Package render draws the track and the cars. Layout math lives in untagged
// files so headless builds and tests can use it.
package render

import (
	"math"

	"idle-racer/internal/track"
)

const (
	panelMin      = 380
	panelMax      = 560
	panelFraction = 0.22
	radiusMinSpan = 200
	radiusScale   = 0.35
)

// Geometry is where the track sits on screen.
type Geometry struct {
	PanelWidth int
	CX, CY     float64
	Radius     float64
}

// Layout fits the track into the area left of the side panel.
func Layout(w, h int) Geometry {
	panel := int(float64(w) * panelFraction)
	panel = max(panelMin, min(panelMax, panel))
	span := max(radiusMinSpan, w-panel)
	return Geometry{
		PanelWidth: panel,
		CX:         float64((w - panel) / 2),
		CY:         float64(h / 2),
		Radius:     float64(int(float64(min(span, h)) * radiusScale)),
	}
}

// PanelX is the left edge of the side panel for a screen w wide.
func (g Geometry) PanelX(w int) int { return w - g.PanelWidth }

// Point places angle t of shape on screen.
func (g Geometry) Point(shape track.Shape, t float64) (float64, float64) {
	return track.Position(shape, t, g.Radius, g.CX, g.CY)
}

// Outline samples n points evenly spaced in angle along shape.
func (g Geometry) Outline(shape track.Shape, n int) [][2]float64 {
	if n < 2 {
		n = 2
	}
	pts := make([][2]float64, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		x, y := g.Point(shape, t)
		pts[i] = [2]float64{x, y}
	}
	return pts
}

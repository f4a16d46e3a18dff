//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"idle-racer/internal/track"
)

const (
	outlineSamples = 180
	carRadius      = 9
	haloRadius     = 14
)

var (
	background = color.RGBA{R: 12, G: 14, B: 20, A: 255}
	trackColor = color.RGBA{R: 70, G: 74, B: 88, A: 255}
	startColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	boostColor = color.RGBA{R: 0, G: 200, B: 255, A: 110}
)

// TrackPainter draws the loop and the cars on it.
type TrackPainter struct {
	shape   track.Shape
	geom    Geometry
	outline [][2]float64
}

// NewTrackPainter returns a painter with no cached outline.
func NewTrackPainter() *TrackPainter { return &TrackPainter{shape: -1} }

// Draw paints shape laid out by geom with units on it.
func (p *TrackPainter) Draw(screen *ebiten.Image, geom Geometry, shape track.Shape, units []track.Unit) {
	if p.shape != shape || p.geom != geom {
		p.shape, p.geom = shape, geom
		p.outline = geom.Outline(shape, outlineSamples)
	}
	screen.Fill(background)

	for i := range p.outline {
		a := p.outline[i]
		b := p.outline[(i+1)%len(p.outline)]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 6, trackColor, true)
	}
	sx, sy := geom.Point(shape, 0)
	vector.DrawFilledRect(screen, float32(sx)-2, float32(sy)-14, 4, 28, startColor, false)

	for i := range units {
		u := &units[i]
		x, y := geom.Point(shape, u.Angle)
		if u.Boosted() {
			vector.DrawFilledCircle(screen, float32(x), float32(y), haloRadius, boostColor, true)
		}
		c := color.RGBA{R: u.Color[0], G: u.Color[1], B: u.Color[2], A: 255}
		vector.DrawFilledCircle(screen, float32(x), float32(y), carRadius, c, true)
	}
}

var sparkColor = color.RGBA{R: 0, G: 220, B: 255, A: 255}

// DrawParticles paints click sparks.
func DrawParticles(screen *ebiten.Image, ps []Particle) {
	for _, p := range ps {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), sparkColor, false)
	}
}

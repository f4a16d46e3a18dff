//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"idle-racer/internal/core"
	"idle-racer/internal/game"
	"idle-racer/internal/render"
	"idle-racer/internal/ui"
)

var keyNames = map[string]ebiten.Key{
	"1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6,
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "F": ebiten.KeyF,
	"H": ebiten.KeyH, "J": ebiten.KeyJ, "M": ebiten.KeyM, "N": ebiten.KeyN,
	"O": ebiten.KeyO, "P": ebiten.KeyP, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"V": ebiten.KeyV, "X": ebiten.KeyX, "Z": ebiten.KeyZ,
	"Enter": ebiten.KeyEnter, "Esc": ebiten.KeyEscape,
}

// Game adapts the game state to the ebiten.Game interface.
type Game struct {
	state   *game.State
	ctrl    *ui.Controller
	hud     *ui.HUD
	painter *render.TrackPainter
	sparks  *render.Particles

	w, h int
	tps  int
}

// New constructs a Game driving state.
func New(state *game.State, seed int64) *Game {
	ctrl := ui.NewController(state)
	return &Game{
		state:   state,
		ctrl:    ctrl,
		hud:     ui.NewHUD(ctrl),
		painter: render.NewTrackPainter(),
		sparks:  render.NewParticles(core.NewRNG(seed)),
		w:       1280,
		h:       720,
	}
}

// Update handles per-frame input and advances the game by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.ctrl.Screen() == ui.ScreenIdle && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.syncTPS()
	geom := render.Layout(g.w, g.h)
	consumed := g.hud.Update(geom.PanelX(g.w), geom.PanelWidth)

	for _, b := range ui.Bindings(g.ctrl.Screen()) {
		if k, ok := keyNames[b.Key]; ok && inpututil.IsKeyJustPressed(k) {
			_ = g.ctrl.Do(b.Action)
			break
		}
	}

	if !consumed && g.ctrl.Screen() == ui.ScreenIdle && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); x < geom.PanelX(g.w) {
			_ = g.ctrl.Do(ui.ActionClick)
			if g.state.Settings().Particles {
				g.sparks.Burst(float64(x), float64(y))
			}
		}
	}

	dt := 1 / float64(g.tps)
	g.state.Tick(dt)
	g.sparks.Update(dt)
	if !g.state.Settings().Particles {
		g.sparks.Clear()
	}
	return nil
}

// syncTPS applies the frame cap setting. Each update is one tick of 1/TPS.
func (g *Game) syncTPS() {
	want := g.state.Settings().FPSCap
	if want <= 0 {
		want = ebiten.DefaultTPS
	}
	if want != g.tps {
		g.tps = want
		ebiten.SetTPS(want)
	}
}

// Draw renders the track, the cars and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	geom := render.Layout(g.w, g.h)
	g.painter.Draw(screen, geom, g.state.Shape(), g.state.Units())
	render.DrawParticles(screen, g.sparks.Items())
	g.hud.Draw(screen)
}

// Layout follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.w, g.h = outsideWidth, outsideHeight
	}
	return g.w, g.h
}

//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"idle-racer/internal/blackjack"
	"idle-racer/internal/format"
)

var (
	panelBG   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFG   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFG   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimFG     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	goldFG    = color.RGBA{R: 255, G: 210, B: 80, A: 255}
	redSuitFG = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	noteBG    = color.RGBA{R: 30, G: 32, B: 40, A: 230}
	overlayBG = color.RGBA{R: 8, G: 8, B: 12, A: 220}
)

// HUD renders the side panel, notifications, the stats overlay and the
// blackjack table.
type HUD struct {
	ctrl    *Controller
	pixel   *ebiten.Image
	buttons []hudButton

	panelX int
	screen Screen
	laid   int
}

type hudButton struct {
	binding Binding
	rect    image.Rectangle
}

// NewHUD constructs a HUD driven by ctrl.
func NewHUD(ctrl *Controller) *HUD {
	h := &HUD{ctrl: ctrl, laid: -1}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update lays out the buttons for a panel starting at panelX and handles
// clicks on them. It reports whether a click was consumed.
func (h *HUD) Update(panelX, panelWidth int) bool {
	if h == nil {
		return false
	}
	if s := h.ctrl.Screen(); s != h.screen || h.laid != panelX {
		h.screen = s
		h.layout(panelX, panelWidth)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelX {
		return false
	}
	for _, b := range h.buttons {
		if pointInRect(mx, my, b.rect) {
			_ = h.ctrl.Do(b.binding.Action)
			return true
		}
	}
	return true
}

func (h *HUD) layout(panelX, panelWidth int) {
	h.panelX = panelX
	h.laid = panelX
	binds := Bindings(h.screen)
	h.buttons = h.buttons[:0]
	for i, b := range binds {
		top := buttonsTop + i*lineHeight
		rect := image.Rect(panelX+panelPadding, top, panelX+panelWidth-panelPadding, top+buttonHeight)
		h.buttons = append(h.buttons, hudButton{binding: b, rect: rect})
	}
}

// Draw paints the HUD over the track view.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	bounds := screen.Bounds()
	h.fill(screen, image.Rect(h.panelX, 0, bounds.Max.X, bounds.Max.Y), panelBG)

	g := h.ctrl.Game()
	st := g.Economy()
	face := basicfont.Face7x13
	x := h.panelX + panelPadding
	text.Draw(screen, "IDLE RACER + BLACKJACK", face, x, panelPadding+headerBaseline, titleFG)
	text.Draw(screen, "Gold: "+format.Number(st.Gold), face, x, panelPadding+headerBaseline+infoSpacing, goldFG)
	rate := fmt.Sprintf("%s/s  lap %s", format.Number(g.GoldPerSec()), format.Number(g.Params().GoldPerLap(st)))
	text.Draw(screen, rate, face, x, panelPadding+headerBaseline+2*infoSpacing, dimFG)

	for _, b := range h.buttons {
		h.drawButton(screen, b.rect, h.ctrl.ButtonText(b.binding), h.ctrl.Enabled(b.binding))
	}

	if h.ctrl.Screen() == ScreenBlackjack {
		h.drawTable(screen, g.Table())
	}
	if h.ctrl.ShowStats() {
		h.drawStats(screen)
	}
	h.drawNotifications(screen)
}

func (h *HUD) drawStats(screen *ebiten.Image) {
	face := basicfont.Face7x13
	snap := h.ctrl.Game().Stats()
	rows := 0
	for _, grp := range snap.Groups {
		rows += len(grp.Stats) + 1
	}
	rect := image.Rect(24, 24, 24+statsWidth, 24+2*panelPadding+rows*statsLine)
	h.fill(screen, rect, overlayBG)
	y := rect.Min.Y + panelPadding + statsLine
	for _, grp := range snap.Groups {
		text.Draw(screen, grp.Name, face, rect.Min.X+panelPadding, y, titleFG)
		y += statsLine
		for _, s := range grp.Stats {
			text.Draw(screen, s.Label, face, rect.Min.X+2*panelPadding, y, dimFG)
			w := text.BoundString(face, s.Value).Dx()
			text.Draw(screen, s.Value, face, rect.Max.X-panelPadding-w, y, labelFG)
			y += statsLine
		}
	}
}

func (h *HUD) drawNotifications(screen *ebiten.Image) {
	face := basicfont.Face7x13
	notes := h.ctrl.Game().Notifications()
	y := screen.Bounds().Max.Y - panelPadding
	for i := len(notes) - 1; i >= 0 && i >= len(notes)-maxNotes; i-- {
		n := notes[i]
		w := text.BoundString(face, n.Text).Dx()
		rect := image.Rect(panelPadding, y-noteHeight, 3*panelPadding+w, y)
		h.fill(screen, rect, noteBG)
		fg := labelFG
		if n.Remaining() < 0.5 {
			fg = dimFG
		}
		text.Draw(screen, n.Text, face, rect.Min.X+panelPadding, rect.Max.Y-7, fg)
		y -= noteHeight + 4
	}
}

func (h *HUD) drawTable(screen *ebiten.Image, r blackjack.Round) {
	face := basicfont.Face7x13
	cx := h.panelX / 2
	text.Draw(screen, "BLACKJACK", face, cx-30, 56, titleFG)

	dealerLabel := "Dealer"
	if !r.InRound && len(r.Dealer) > 0 {
		dealerLabel = fmt.Sprintf("Dealer (%d)", r.Dealer.Value())
	}
	text.Draw(screen, dealerLabel, face, cx-200, 110, dimFG)
	for i, c := range r.Dealer {
		hidden := r.InRound && i == 1
		h.drawCard(screen, c, hidden, cx-200+i*(cardW+8), 120)
	}

	text.Draw(screen, fmt.Sprintf("You (%d)", r.Player.Value()), face, cx-200, 270, dimFG)
	for i, c := range r.Player {
		h.drawCard(screen, c, false, cx-200+i*(cardW+8), 280)
	}

	text.Draw(screen, r.Message, face, cx-200, 420, labelFG)
	bet := fmt.Sprintf("Bet: %s", format.Number(float64(r.Bet)))
	if r.InRound {
		bet = fmt.Sprintf("Stake: %s", format.Number(float64(r.BetLocked)))
	}
	text.Draw(screen, bet, face, cx-200, 444, goldFG)
}

func (h *HUD) drawCard(screen *ebiten.Image, c blackjack.Card, hidden bool, x, y int) {
	rect := image.Rect(x, y, x+cardW, y+cardH)
	h.fill(screen, rect, labelFG)
	h.fill(screen, rect.Inset(2), panelBG)
	face := basicfont.Face7x13
	if hidden {
		text.Draw(screen, "?", face, x+cardW/2-3, y+cardH/2+4, dimFG)
		return
	}
	fg := labelFG
	if c.Suit == blackjack.Hearts || c.Suit == blackjack.Diamonds {
		fg = redSuitFG
	}
	text.Draw(screen, c.Rank.String(), face, x+8, y+18, fg)
	text.Draw(screen, suitLetter(c.Suit), face, x+8, y+cardH-12, fg)
}

// suitLetter avoids glyphs basicfont does not carry.
func suitLetter(s blackjack.Suit) string {
	switch s {
	case blackjack.Spades:
		return "S"
	case blackjack.Hearts:
		return "H"
	case blackjack.Diamonds:
		return "D"
	}
	return "C"
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fill(screen, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textHeight := bounds.Dy()
	x := rect.Min.X + panelPadding
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(screen, strings.TrimSpace(label), face, x, y, fg)
}

func (h *HUD) fill(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonHeight   = 28
	headerBaseline = 18
	infoSpacing    = 22
	buttonsTop     = panelPadding + headerBaseline + 3*infoSpacing
	statsWidth     = 320
	statsLine      = 16
	noteHeight     = 24
	maxNotes       = 5
	cardW          = 64
	cardH          = 92
)

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/motionrush/engine"
)

const popupTicks = 45

// popup is a short-lived "+10" style score marker rising from a pickup.
type popup struct {
	x, y float32
	text string
	ttl  int
}

func (g *Game) pushPopup(ev engine.ObjectEvent) {
	g.popups = append(g.popups, popup{
		x:    float32(ev.Lateral * baseWidth),
		y:    playerPlaneY - 80,
		text: fmt.Sprintf("+%d", ev.Value),
		ttl:  popupTicks,
	})
}

func (g *Game) updatePopups() {
	alive := g.popups[:0]
	for _, p := range g.popups {
		p.y--
		p.ttl--
		if p.ttl > 0 {
			alive = append(alive, p)
		}
	}
	g.popups = alive
}

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.eng == nil {
		return
	}

	drawText(screen, fmt.Sprintf("Score %d", g.eng.Score()), 20, 16, 2, white)
	drawText(screen, fmt.Sprintf("Level %d", g.eng.Level()), 20, 48, 2, white)
	if g.best > 0 {
		drawText(screen, fmt.Sprintf("Best %d", g.best), 20, 80, 2, color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff})
	}

	lives := ""
	for i := 0; i < g.eng.Lives(); i++ {
		lives += "<3 "
	}
	drawText(screen, lives, baseWidth-140, 16, 2, barrierColor)

	for _, p := range g.popups {
		alpha := uint8(255 * p.ttl / popupTicks)
		drawText(screen, p.text, float64(p.x), float64(p.y), 2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: alpha})
	}
}

func drawDebugLine(screen *ebiten.Image, s string) {
	ebitenutil.DebugPrint(screen, s)
}

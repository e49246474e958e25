package main

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/motionrush/engine"
)

const (
	horizonY     = baseHeight * 0.30
	playerPlaneY = baseHeight * 0.86
	jumpPixels   = 90
)

var (
	skyColor      = color.NRGBA{R: 0x10, G: 0x12, B: 0x24, A: 0xff}
	groundColor   = color.NRGBA{R: 0x1c, G: 0x20, B: 0x38, A: 0xff}
	laneLineColor = color.NRGBA{R: 0x3a, G: 0x44, B: 0x6e, A: 0xff}
	coinColor     = color.NRGBA{R: 0xff, G: 0xd4, B: 0x3b, A: 0xff}
	starColor     = color.NRGBA{R: 0x7d, G: 0xe8, B: 0xff, A: 0xff}
	barrierColor  = color.NRGBA{R: 0xe8, G: 0x4a, B: 0x5f, A: 0xff}
	crateColor    = color.NRGBA{R: 0xc9, G: 0x7b, B: 0x4a, A: 0xff}
	playerColor   = color.NRGBA{R: 0x5b, G: 0xff, B: 0x9d, A: 0xff}
	playerDim     = color.NRGBA{R: 0x5b, G: 0xff, B: 0x9d, A: 0x50}
)

// depthToY projects a depth coordinate onto the screen between the horizon
// and the player plane.
func depthToY(depth float64) float32 {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	return float32(horizonY + (playerPlaneY-horizonY)*depth)
}

func drawBackdrop(screen *ebiten.Image) {
	screen.Fill(skyColor)
	vector.DrawFilledRect(screen, 0, horizonY, baseWidth, baseHeight-horizonY, groundColor, false)
}

// drawScene renders an engine snapshot. It reads the engine but never
// writes it; all judgement already happened in Update.
func drawScene(screen *ebiten.Image, eng *engine.Engine, nowMs float64) {
	drawBackdrop(screen)
	if eng == nil {
		return
	}
	tu := eng.Tuning()

	drawLanes(screen, tu)
	drawObjects(screen, eng, tu)
	drawParticles(screen, eng)
	drawPlayer(screen, eng, tu, nowMs)
}

func drawLanes(screen *ebiten.Image, tu engine.Tuning) {
	// lane guide lines, sampled so the perspective pinch shows
	const segments = 12
	for lane := 0; lane < tu.Lanes; lane++ {
		for s := 0; s < segments; s++ {
			d0 := float64(s) / segments
			d1 := float64(s+1) / segments
			x0 := float32(engine.LaneLateral(tu, lane, d0) * baseWidth)
			x1 := float32(engine.LaneLateral(tu, lane, d1) * baseWidth)
			vector.StrokeLine(screen, x0, depthToY(d0), x1, depthToY(d1), 1, laneLineColor, true)
		}
	}
}

func drawObjects(screen *ebiten.Image, eng *engine.Engine, tu engine.Tuning) {
	objects := eng.Objects()
	order := make([]int, 0, len(objects))
	for i, o := range objects {
		if !o.Active {
			continue
		}
		if o.Resolved && o.Kind.Class() == engine.ClassCollectible {
			// collected: visually consumed
			continue
		}
		order = append(order, i)
	}
	// far to near so nearer objects overdraw
	sort.Slice(order, func(a, b int) bool { return objects[order[a]].Depth < objects[order[b]].Depth })

	for _, i := range order {
		o := objects[i]
		x := float32(engine.LaneLateral(tu, o.Lane, o.Depth) * baseWidth)
		y := depthToY(o.Depth)
		scale := float32((0.25 + 0.75*o.Depth) * o.Size)

		switch o.Kind {
		case engine.KindCoin:
			vector.DrawFilledCircle(screen, x, y, 14*scale, coinColor, true)
		case engine.KindStar:
			vector.DrawFilledCircle(screen, x, y, 17*scale, starColor, true)
		case engine.KindBarrier:
			w := 120 * scale
			h := 26 * scale
			vector.DrawFilledRect(screen, x-w/2, y-h, w, h, barrierColor, true)
		case engine.KindCrate:
			s := 44 * scale
			vector.DrawFilledRect(screen, x-s/2, y-s, s, s, crateColor, true)
		}
	}
}

func drawParticles(screen *ebiten.Image, eng *engine.Engine) {
	for _, pt := range eng.Particles() {
		if !pt.Active {
			continue
		}
		var base color.NRGBA
		switch pt.Tint {
		case engine.TintStar:
			base = starColor
		case engine.TintCrash:
			base = barrierColor
		default:
			base = coinColor
		}
		base.A = uint8(255 * pt.Life)
		r := float32(pt.Size * baseWidth)
		vector.DrawFilledCircle(screen, float32(pt.Pos.X*baseWidth), float32(pt.Pos.Y*baseHeight), r, base, true)
	}
}

func drawPlayer(screen *ebiten.Image, eng *engine.Engine, tu engine.Tuning, nowMs float64) {
	p := eng.Player()

	// renderer draws from the smoothed position; collision already used raw
	x := float32(p.Display * baseWidth)
	y := float32(playerPlaneY)
	if p.Jumping() {
		prog := p.JumpProgress(nowMs, tu.JumpDurationMs)
		y -= float32(math.Sin(prog*math.Pi) * jumpPixels)
	}

	clr := playerColor
	if p.Invincible(nowMs) && int(nowMs/100)%2 == 0 {
		clr = playerDim
	}

	half := float32(p.HalfWidth * baseWidth)
	if half < 14 {
		half = 14
	}
	vector.DrawFilledRect(screen, x-half, y-10, half*2, 10, clr, true)
	vector.DrawFilledCircle(screen, x, y-28, 16, clr, true)
}

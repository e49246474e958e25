package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/motionrush/config"
	"github.com/milk9111/motionrush/engine"
	"github.com/milk9111/motionrush/score"
	"github.com/milk9111/motionrush/sensor"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type scene int

const (
	sceneMenu scene = iota
	scenePlaying
	scenePaused
	sceneGameOver
)

// Game is the ebiten host around the engine. It owns the scene state and
// everything presentational; the engine owns everything that matters.
type Game struct {
	scene scene
	mode  engine.Mode
	cfg   config.File

	eng      *engine.Engine
	feed     *sensor.Feed
	jumpEdge sensor.JumpEdge
	keys     *Keyboard

	store  *score.Store
	sounds *Sounds
	popups []popup

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI
	overUI  *ebitenui.UI

	start time.Time
	seed  int64
	debug bool

	best    int
	newBest bool

	// tuning reloads land here and apply on the next run, never mid-frame
	tuningCh chan config.File
}

// NewGame wires the host together. The sensor feed is shared with the
// websocket receiver running on its own goroutine.
func NewGame(mode engine.Mode, cfg config.File, feed *sensor.Feed, store *score.Store, seed int64, debug bool) *Game {
	g := &Game{
		scene:    sceneMenu,
		mode:     mode,
		cfg:      cfg,
		feed:     feed,
		keys:     NewKeyboard(),
		store:    store,
		sounds:   NewSounds(),
		start:    time.Now(),
		seed:     seed,
		debug:    debug,
		tuningCh: make(chan config.File, 1),
	}
	g.menuUI = NewMenuUI(g)
	g.pauseUI = NewPauseUI(g)
	return g
}

// TuningReloads exposes the channel the config watcher publishes into.
func (g *Game) TuningReloads() chan<- config.File {
	return g.tuningCh
}

func (g *Game) nowMs() float64 {
	return time.Since(g.start).Seconds() * 1000
}

// startGame begins a fresh run of the selected mode.
func (g *Game) startGame(mode engine.Mode) {
	g.mode = mode
	g.eng = engine.New(mode, g.cfg.For(mode), g.seed)
	g.popups = g.popups[:0]
	g.newBest = false
	if best, err := g.store.HighScore(mode); err == nil {
		g.best = best
	} else {
		log.Printf("game: high score lookup: %v", err)
		g.best = 0
	}
	g.scene = scenePlaying
}

func (g *Game) Update() error {
	select {
	case cfg := <-g.tuningCh:
		g.cfg = cfg
		log.Printf("game: tuning reloaded, applies to the next run")
	default:
	}

	now := g.nowMs()

	switch g.scene {
	case sceneMenu:
		g.menuUI.Update()
	case scenePlaying:
		g.updatePlaying(now)
	case scenePaused:
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.scene = scenePlaying
		}
	case sceneGameOver:
		if g.overUI != nil {
			g.overUI.Update()
		}
	}

	g.updatePopups()
	return nil
}

func (g *Game) updatePlaying(now float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene = scenePaused
		return
	}

	g.keys.Update(g.feed, now)

	sample, _ := g.feed.Latest()
	in := engine.Input{
		Lateral: sample.Lateral,
		Width:   sample.Width,
		Jump:    g.jumpEdge.Detect(sample.ArmsRaised),
	}

	res := g.eng.Update(in, now)
	g.consume(res)
}

// consume fans a frame result out to audio and popups. It only reads the
// batch; engine state is never touched from here.
func (g *Game) consume(res engine.FrameResult) {
	for _, ev := range res.Collected {
		g.sounds.PlayCollect(ev.Kind)
		g.pushPopup(ev)
	}
	for range res.Crashed {
		g.sounds.PlayCrash()
	}
	if res.LeveledUp {
		g.sounds.PlayLevelUp()
	}
	if res.GameOver {
		g.finishGame()
	}
}

func (g *Game) finishGame() {
	g.sounds.PlayGameOver()
	newBest, err := g.store.Submit(g.mode, g.eng.Score(), g.eng.Level())
	if err != nil {
		log.Printf("game: submit score: %v", err)
	}
	g.newBest = newBest
	if newBest {
		g.best = g.eng.Score()
	}
	g.overUI = NewGameOverUI(g)
	g.scene = sceneGameOver
}

// resultSummary is the share text the game-over screen copies to the
// clipboard.
func (g *Game) resultSummary() string {
	return fmt.Sprintf("motionrush (%s): score %d, level %d, best %d", g.mode, g.eng.Score(), g.eng.Level(), g.best)
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.nowMs()

	switch g.scene {
	case sceneMenu:
		drawBackdrop(screen)
		g.menuUI.Draw(screen)
	case scenePlaying, scenePaused, sceneGameOver:
		drawScene(screen, g.eng, now)
		g.drawHUD(screen)
		if g.scene == scenePaused {
			g.pauseUI.Draw(screen)
		}
		if g.scene == sceneGameOver && g.overUI != nil {
			g.overUI.Draw(screen)
		}
	}

	if g.debug {
		drawDebugLine(screen, fmt.Sprintf("FPS: %.1f  objects: %d", ebiten.ActualFPS(), g.activeObjects()))
	}
}

func (g *Game) activeObjects() int {
	if g.eng == nil {
		return 0
	}
	return g.eng.ActiveObjects()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/motionrush/config"
	"github.com/milk9111/motionrush/engine"
	"github.com/milk9111/motionrush/score"
	"github.com/milk9111/motionrush/sensor"
)

func main() {
	mode := flag.String("mode", string(engine.ModeDash), "initial mode: dash or river")
	listen := flag.String("listen", "localhost:8089", "address for the pose tracker websocket")
	tuningPath := flag.String("tuning", "tuning.yaml", "tuning file (optional, watched for changes)")
	seed := flag.Int64("seed", 0, "spawn seed, 0 = time-based")
	debug := flag.Bool("debug", false, "enable debug overlay")
	flag.Parse()

	cfg, err := config.Load(*tuningPath)
	if err != nil {
		log.Printf("main: %v (using defaults)", err)
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("main: clipboard unavailable: %v", err)
		clipboardReady = false
	}

	store, err := score.Open(score.DefaultPath())
	if err != nil {
		log.Fatalf("main: open score store: %v", err)
	}
	defer store.Close()

	feed := sensor.NewFeed()
	go func() {
		if err := sensor.NewServer(feed).ListenAndServe(*listen); err != nil {
			log.Printf("main: sensor server: %v (keyboard input still works)", err)
		}
	}()

	game := NewGame(engine.Mode(*mode), cfg, feed, store, pickSeed(*seed), *debug)

	watchTuning(*tuningPath, game.TuningReloads())

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("motionrush")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// watchTuning reloads the config file on change and hands it to the game.
// Watch failures are non-fatal; editing tuning mid-session is a dev luxury.
func watchTuning(path string, reloads chan<- config.File) {
	w, err := config.NewWatcher(".")
	if err != nil {
		log.Printf("main: tuning watch disabled: %v", err)
		return
	}
	go func() {
		for changed := range w.Events {
			cfg, err := config.Load(path)
			if err != nil {
				log.Printf("main: reload %s: %v", changed, err)
				continue
			}
			select {
			case reloads <- cfg:
			default: // an unconsumed reload is stale anyway
			}
		}
	}()
}

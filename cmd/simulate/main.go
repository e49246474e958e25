// Command simulate runs headless games with a scripted pilot and prints the
// results. It exists to sanity-check tuning changes without standing in front
// of a camera for an hour.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/motionrush/config"
	"github.com/milk9111/motionrush/engine"
	"github.com/milk9111/motionrush/sensor"
)

const (
	tickMs      = 1000.0 / 60
	maxTicks    = 60 * 60 * 10 // ten minutes, in case the pilot never dies
	lateralStep = 0.02
	pilotWidth  = 0.12
)

// defaultPilot chases collectibles and deals with obstacles in its lane by
// jumping late or sidestepping early. `threat` is the deepest active object;
// outputs are `target_lane` and `raise` (the arms-up signal, not an edge).
const defaultPilot = `
target_lane := player_lane
raise := false

if threat_kind == "obstacle" && threat_lane == player_lane {
	if threat_depth > 0.72 {
		raise = true
	} else if threat_depth > 0.45 {
		if player_lane == 0 {
			target_lane = 1
		} else {
			target_lane = player_lane - 1
		}
	}
} else if threat_kind == "collectible" {
	target_lane = threat_lane
}
`

type pilot struct {
	compiled *tengo.Compiled
}

func loadPilot(path string) (*pilot, error) {
	src := []byte(defaultPilot)
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("simulate: read pilot script: %w", err)
		}
		src = b
	}

	script := tengo.NewScript(src)
	_ = script.Add("player_lane", 0)
	_ = script.Add("lanes", 0)
	_ = script.Add("threat_kind", "none")
	_ = script.Add("threat_lane", 0)
	_ = script.Add("threat_depth", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("simulate: compile pilot script: %w", err)
	}
	return &pilot{compiled: compiled}, nil
}

// decide runs the script against the current engine state and returns the
// lane the pilot wants and whether its arms are raised.
func (p *pilot) decide(eng *engine.Engine) (int, bool, error) {
	tu := eng.Tuning()
	kind, lane, depth := deepestThreat(eng)

	sets := []error{
		p.compiled.Set("player_lane", eng.Player().Lane(tu)),
		p.compiled.Set("lanes", tu.Lanes),
		p.compiled.Set("threat_kind", kind),
		p.compiled.Set("threat_lane", lane),
		p.compiled.Set("threat_depth", depth),
	}
	for _, err := range sets {
		if err != nil {
			return 0, false, err
		}
	}
	if err := p.compiled.Run(); err != nil {
		return 0, false, err
	}

	target := int(p.compiled.Get("target_lane").Int())
	raise := false
	if p.compiled.IsDefined("raise") {
		raise = p.compiled.Get("raise").Bool()
	}
	return target, raise, nil
}

// deepestThreat reports the active unresolved object closest to the player
// plane, obstacles taking priority over collectibles.
func deepestThreat(eng *engine.Engine) (kind string, lane int, depth float64) {
	kind = "none"
	bestObstacle, bestCollectible := -1.0, -1.0
	for _, o := range eng.Objects() {
		if !o.Active || o.Resolved {
			continue
		}
		switch o.Kind.Class() {
		case engine.ClassObstacle:
			if o.Depth > bestObstacle {
				bestObstacle = o.Depth
				kind, lane, depth = "obstacle", o.Lane, o.Depth
			}
		case engine.ClassCollectible:
			if bestObstacle < 0 && o.Depth > bestCollectible {
				bestCollectible = o.Depth
				kind, lane, depth = "collectible", o.Lane, o.Depth
			}
		}
	}
	return kind, lane, depth
}

type runResult struct {
	score int
	level int
	ticks int
}

func simulate(p *pilot, mode engine.Mode, tu engine.Tuning, seed int64) (runResult, error) {
	eng := engine.New(mode, tu, seed)

	lateral := 0.5
	var edge sensor.JumpEdge
	now := 0.0

	ticks := 0
	for ; ticks < maxTicks && !eng.GameOver(); ticks++ {
		now += tickMs

		target, raise, err := p.decide(eng)
		if err != nil {
			return runResult{}, fmt.Errorf("simulate: pilot: %w", err)
		}

		want := engine.LaneLateral(tu, target, 1.0)
		switch {
		case lateral < want-lateralStep:
			lateral += lateralStep
		case lateral > want+lateralStep:
			lateral -= lateralStep
		default:
			lateral = want
		}

		eng.Update(engine.Input{
			Lateral: lateral,
			Width:   pilotWidth,
			Jump:    edge.Detect(raise),
		}, now)
	}

	return runResult{score: eng.Score(), level: eng.Level(), ticks: ticks}, nil
}

func main() {
	mode := flag.String("mode", string(engine.ModeDash), "mode to simulate: dash or river")
	runs := flag.Int("runs", 10, "number of games")
	seed := flag.Int64("seed", 1, "base seed; run i uses seed+i")
	tuningPath := flag.String("tuning", "tuning.yaml", "tuning file")
	scriptPath := flag.String("script", "", "pilot script (tengo), empty = built-in pilot")
	flag.Parse()

	cfg, err := config.Load(*tuningPath)
	if err != nil {
		log.Printf("simulate: %v (using defaults)", err)
	}
	tu := cfg.For(engine.Mode(*mode))

	p, err := loadPilot(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	var totalScore, totalTicks, maxScore int
	for i := 0; i < *runs; i++ {
		res, err := simulate(p, engine.Mode(*mode), tu, *seed+int64(i))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("run %2d  seed %-12d  score %-6d level %-3d duration %5.1fs\n",
			i+1, *seed+int64(i), res.score, res.level, float64(res.ticks)*tickMs/1000)

		totalScore += res.score
		totalTicks += res.ticks
		if res.score > maxScore {
			maxScore = res.score
		}
	}

	fmt.Printf("\n%s x%d: avg score %.1f  max score %d  avg duration %.1fs\n",
		*mode, *runs, float64(totalScore)/float64(*runs), maxScore,
		float64(totalTicks)*tickMs/1000/float64(*runs))
}

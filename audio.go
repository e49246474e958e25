package main

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/motionrush/engine"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// Sounds holds the synthesized effect players. There are no audio assets;
// every effect is a short PCM tone generated at startup.
type Sounds struct {
	coin  *audio.Player
	star  *audio.Player
	crash *audio.Player
	level *audio.Player
	over  *audio.Player
}

// NewSounds builds the effect set.
func NewSounds() *Sounds {
	return &Sounds{
		coin:  tonePlayer(880, 90, 0.35),
		star:  tonePlayer(1320, 140, 0.35),
		crash: tonePlayer(110, 250, 0.5),
		level: tonePlayer(660, 180, 0.4),
		over:  tonePlayer(220, 500, 0.5),
	}
}

// tonePlayer renders a decaying sine tone into Ebiten's native PCM format
// (16-bit LE stereo) and wraps it in a player.
func tonePlayer(freq float64, ms int, volume float64) *audio.Player {
	n := sampleRate * ms / 1000
	b := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*t) * envelope * volume
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(b[i*4:], s)
		binary.LittleEndian.PutUint16(b[i*4+2:], s)
	}
	return audioContext.NewPlayerFromBytes(b)
}

func play(p *audio.Player) {
	p.Rewind()
	p.Play()
}

// PlayCollect picks the effect for a collected object.
func (s *Sounds) PlayCollect(kind engine.Kind) {
	if kind == engine.KindStar {
		play(s.star)
		return
	}
	play(s.coin)
}

func (s *Sounds) PlayCrash()    { play(s.crash) }
func (s *Sounds) PlayLevelUp()  { play(s.level) }
func (s *Sounds) PlayGameOver() { play(s.over) }

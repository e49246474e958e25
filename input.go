package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/motionrush/sensor"
)

const (
	keyboardStep  = 0.015
	keyboardWidth = 0.12
)

// Keyboard synthesizes pose samples from the arrow keys and space bar, so
// the game is playable without a camera. It publishes through the same
// feed as the tracker; once a key has been touched it keeps publishing and
// effectively owns the feed for the session.
type Keyboard struct {
	lateral float64
	active  bool
}

// NewKeyboard starts the virtual body centered.
func NewKeyboard() *Keyboard {
	return &Keyboard{lateral: 0.5}
}

// Update reads the keys and, when the keyboard is in use, publishes a
// synthetic sample.
func (k *Keyboard) Update(feed *sensor.Feed, nowMs float64) {
	moved := false
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		k.lateral -= keyboardStep
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		k.lateral += keyboardStep
		moved = true
	}
	if k.lateral < 0 {
		k.lateral = 0
	}
	if k.lateral > 1 {
		k.lateral = 1
	}

	raised := ebiten.IsKeyPressed(ebiten.KeySpace)
	if moved || raised {
		k.active = true
	}
	if !k.active {
		return
	}

	feed.Publish(sensor.Sample{
		Lateral:    k.lateral,
		Width:      keyboardWidth,
		ArmsRaised: raised,
		AtMs:       nowMs,
	})
}

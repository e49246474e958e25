// Package sensor is the boundary to the pose-tracking collaborator. The
// tracker, usually a browser page running body segmentation against the
// webcam, pushes samples at whatever rate it manages; the game loop reads
// the latest-known sample each frame and never waits for a fresh one. A
// stale sample is expected degradation, not an error.
package sensor

import "sync"

// Sample is one pose observation: a normalized horizontal body position,
// a body width, and whether the arms are raised.
type Sample struct {
	Lateral    float64
	Width      float64
	ArmsRaised bool
	AtMs       float64
}

// Feed holds the latest-known sample. Writers (the websocket receiver, the
// keyboard fallback) publish from their own goroutines; the game loop reads
// without blocking. This is the only cross-goroutine state in the game.
type Feed struct {
	mu     sync.Mutex
	latest Sample
	seq    uint64
}

// NewFeed returns a feed primed with a centered, neutral sample so the game
// behaves before the first real observation arrives.
func NewFeed() *Feed {
	return &Feed{latest: Sample{Lateral: 0.5, Width: 0.1}}
}

// Publish replaces the latest sample, clamping the geometric fields so a
// misbehaving tracker can never push an out-of-range position downstream.
func (f *Feed) Publish(s Sample) {
	s.Lateral = clamp01(s.Lateral)
	s.Width = clamp01(s.Width)
	f.mu.Lock()
	f.latest = s
	f.seq++
	f.mu.Unlock()
}

// Latest returns the most recent sample and its sequence number. The
// sequence lets callers tell "new sample" from "same one again".
func (f *Feed) Latest() (Sample, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.seq
}

// JumpEdge turns the arms-raised level signal into a rising edge: Detect
// returns true exactly once per raise. The engine requires an
// edge-triggered jump signal.
type JumpEdge struct {
	prev bool
}

// Detect reports whether this observation is a rising edge.
func (j *JumpEdge) Detect(raised bool) bool {
	edge := raised && !j.prev
	j.prev = raised
	return edge
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package motion

import (
	"math"

	"github.com/milk9111/platformdemo/geom"
)

// World is the whole simulation: one player and the static walls. Hosts
// own a World and call Step once per frame.
type World struct {
	Player *Player
	Walls  Walls
	Tuning Tuning

	ticks uint64
}

func NewWorld(t Tuning) *World {
	return &World{
		Player: NewPlayer(t.Start, t),
		Walls:  DefaultWalls(),
		Tuning: t,
	}
}

// Step advances the world by dt seconds. Negative or non-finite dt is
// treated as zero and Horizontal is clamped to -1..1.
func (w *World) Step(in Input, dt float64) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	ApplyInput(w.Player, in.Normalized(), dt, w.Tuning)
	ResolvePosition(w.Player, &w.Walls, w.Tuning)
	w.ticks++
}

// Ticks returns the number of Step calls since creation or the last Reset.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Reset puts the player back at the start point with zeroed motion.
func (w *World) Reset() {
	p := w.Player
	p.Position = w.Tuning.Start
	p.Velocity = geom.Vector2{}
	p.FrameVelocity = geom.Vector2{}
	p.Grounded = false
	p.syncRects(w.Tuning)
	w.ticks = 0
}

// SetTuning swaps the tuning in place. The player keeps its position and
// velocity; only its derived rects are rebuilt.
func (w *World) SetTuning(t Tuning) {
	w.Tuning = t
	w.Player.RectOffset = t.CollisionOffset
	w.Player.syncRects(t)
}

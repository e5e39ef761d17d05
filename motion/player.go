package motion

import "github.com/milk9111/platformdemo/geom"

// State is the player's vertical state for the current tick.
type State int

const (
	Airborne State = iota
	Grounded
)

func (s State) String() string {
	if s == Grounded {
		return "grounded"
	}
	return "airborne"
}

// Input is the per-tick control snapshot handed to the resolver.
type Input struct {
	// Horizontal is -1 for left, 0 for none, +1 for right.
	Horizontal int
	// Jump is true while the jump key is held.
	Jump bool
}

// Normalized clamps Horizontal to -1, 0 or +1.
func (in Input) Normalized() Input {
	switch {
	case in.Horizontal < 0:
		in.Horizontal = -1
	case in.Horizontal > 0:
		in.Horizontal = 1
	}
	return in
}

// Player is the single simulated body. It is built once and updated in
// place every tick.
type Player struct {
	Position geom.Vector2
	Velocity geom.Vector2
	// FrameVelocity is Velocity scaled by the tick's dt. It is rewritten by
	// ApplyInput before every ResolvePosition.
	FrameVelocity geom.Vector2

	RectOffset float64
	Grounded   bool

	// Rect is the small marker drawn at Position.
	Rect geom.Rect
	// CollisionRect is the collision box around Position.
	CollisionRect geom.Rect
}

// NewPlayer returns a zeroed, airborne player at start with its rects
// derived from t.
func NewPlayer(start geom.Vector2, t Tuning) *Player {
	p := &Player{
		Position:   start,
		RectOffset: t.CollisionOffset,
	}
	p.syncRects(t)
	return p
}

func (p *Player) State() State {
	if p.Grounded {
		return Grounded
	}
	return Airborne
}

func (p *Player) syncRects(t Tuning) {
	pos := t.snap(p.Position)
	p.CollisionRect = geom.RectAt(pos, p.RectOffset, t.CollisionSize, t.CollisionSize)
	p.Rect = geom.RectAt(pos, 0, t.VisualSize, t.VisualSize)
}

package motion

import "github.com/milk9111/platformdemo/geom"

// ApplyInput sets the player's velocity for this tick and derives the
// displacement to attempt.
//
// Horizontal velocity is replaced outright. A grounded player has its
// vertical velocity cleared, and leaves the ground with JumpVelocity when
// jump is held. An airborne player accumulates gravity.
func ApplyInput(p *Player, in Input, dt float64, t Tuning) {
	p.Velocity.X = float64(in.Horizontal) * t.HorizontalSpeed

	if p.Grounded {
		p.Velocity.Y = 0
		if in.Jump {
			p.Grounded = false
			p.Velocity.Y = t.JumpVelocity
		}
	} else {
		p.Velocity.Y += t.Gravity * dt
	}

	p.FrameVelocity = geom.Scale(p.Velocity, dt)
}

// ResolvePosition attempts to move the player by FrameVelocity.
//
// The probe box is built once at the tentative position and tested against
// every wall, in order, with no early exit. Any overlap cancels the whole
// move. An overlap with a wall below the player is a landing: velocity and
// frame velocity are zeroed. How overlaps combine into the grounded flag is
// chosen by t.Landing.
func ResolvePosition(p *Player, walls *Walls, t Tuning) {
	next := geom.Add(p.Position, p.FrameVelocity)
	probe := geom.RectAt(t.snap(next), p.RectOffset, t.CollisionSize, t.CollisionSize)

	lowerCollision := false
	for i := range walls {
		if !geom.RectsOverlap(probe, walls[i]) {
			continue
		}
		next = p.Position

		landed := isLanding(walls, i, p.Position, t.Landing)
		if landed {
			p.Velocity = geom.Vector2{}
			p.FrameVelocity = geom.Vector2{}
		}

		if t.Landing == LandingLastWrite {
			lowerCollision = landed
		} else if landed {
			lowerCollision = true
		}
	}

	p.Grounded = lowerCollision
	p.Position = next
	p.syncRects(t)
}

// isLanding reports whether an overlap with walls[i] counts as standing on
// a floor.
func isLanding(walls *Walls, i int, pos geom.Vector2, rule LandingRule) bool {
	if rule == LandingFirstWall {
		return walls[0].Y > pos.Y
	}
	return walls[i].Y > pos.Y
}

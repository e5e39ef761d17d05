package motion

import (
	"fmt"
	"strings"

	"github.com/milk9111/platformdemo/geom"
)

// LandingRule selects how a tick's wall overlaps decide the grounded flag.
type LandingRule int

const (
	// LandingLastWrite lets every overlapping wall overwrite the grounded
	// flag, so the last overlap in wall order wins. A valid landing on an
	// earlier wall is dropped when a later overlapping wall lies above the
	// player.
	LandingLastWrite LandingRule = iota
	// LandingFirstWall compares the first wall's top against the player on
	// every overlap, whichever wall was hit. The flag is only ever set.
	LandingFirstWall
	// LandingAnyBelow grounds the player if any overlapping wall lies below
	// it. The flag is only ever set.
	LandingAnyBelow
)

var landingRuleNames = map[LandingRule]string{
	LandingLastWrite: "last_write",
	LandingFirstWall: "first_wall",
	LandingAnyBelow:  "any_below",
}

func (r LandingRule) String() string {
	if s, ok := landingRuleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("LandingRule(%d)", int(r))
}

// ParseLandingRule accepts the names produced by String. An empty name
// selects LandingLastWrite.
func ParseLandingRule(s string) (LandingRule, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LandingLastWrite, nil
	}
	for r, name := range landingRuleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown landing rule %q", s)
}

// Tuning holds the numbers the resolver integrates with.
type Tuning struct {
	HorizontalSpeed float64
	JumpVelocity    float64
	Gravity         float64

	CollisionSize   float64
	CollisionOffset float64
	VisualSize      float64

	Start geom.Vector2

	// PixelSnap truncates positions to whole pixels before building the
	// probe and display rects.
	PixelSnap bool
	Landing   LandingRule
}

// DefaultTuning returns the demo's startup tuning.
func DefaultTuning() Tuning {
	return Tuning{
		HorizontalSpeed: HorizontalSpeed,
		JumpVelocity:    JumpVelocity,
		Gravity:         Gravity,
		CollisionSize:   CollisionSize,
		CollisionOffset: RectOffset,
		VisualSize:      VisualSize,
		Start:           geom.V(StartX, StartY),
		PixelSnap:       true,
		Landing:         LandingLastWrite,
	}
}

func (t Tuning) snap(v geom.Vector2) geom.Vector2 {
	if t.PixelSnap {
		return geom.Truncate(v)
	}
	return v
}

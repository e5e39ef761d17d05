package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vector2 is a world-space point or displacement. It shares cp's vector
// type so values can be handed to chipmunk debug tooling without copying.
type Vector2 = cp.Vector

// V is shorthand for a Vector2 literal.
func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the component-wise sum of a and b.
func Add(a, b Vector2) Vector2 {
	return a.Add(b)
}

// Scale returns v with both components multiplied by f.
func Scale(v Vector2, f float64) Vector2 {
	return v.Mult(f)
}

// Truncate drops the fractional part of both components, rounding toward
// zero the way an integer pixel cast does.
func Truncate(v Vector2) Vector2 {
	return Vector2{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}

// Finite reports whether both components are neither NaN nor infinite.
func Finite(v Vector2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

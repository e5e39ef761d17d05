package motion

// Startup configuration of the demo.
const (
	StartX = 128
	StartY = 128

	// HorizontalSpeed is in units per second; velocity is overwritten, never accumulated.
	HorizontalSpeed = 128
	// JumpVelocity is negative because y grows downward.
	JumpVelocity = -128
	// Gravity is in units per second squared.
	Gravity = 192

	CollisionSize = 32
	RectOffset    = -16
	VisualSize    = 2
)

// WallCount is the fixed number of static platforms.
const WallCount = 5

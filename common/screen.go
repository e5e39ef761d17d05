package common

import "time"

// Logical resolution of the world. Hosts scale it to whatever surface they
// draw on.
const (
	BaseWidth  = 1920
	BaseHeight = 1080
)

// FrameDelay is the pause between loop iterations for hosts that drive
// their own loop. It only throttles; tick length is always measured.
const FrameDelay = 16 * time.Millisecond

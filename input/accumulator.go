// Package input folds host key events into the per-tick snapshot the
// simulation reads. Hosts feed Press and Release as events arrive and take
// one Snapshot before each Step.
package input

import (
	"time"

	"github.com/milk9111/platformdemo/motion"
)

type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyJump
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyQuit:
		return "quit"
	}
	return "unknown"
}

// Accumulator holds the input state between ticks.
//
// Pressing left or right sets the direction, so the most recent press
// wins when both are held. Releasing either one stops horizontal motion.
// Jump is held from press to release. Quit latches.
type Accumulator struct {
	horizontal int
	jump       bool
	quit       bool

	// dir is the direction key that set horizontal.
	dir  Key
	held map[Key]time.Time
}

func NewAccumulator() *Accumulator {
	return &Accumulator{held: make(map[Key]time.Time)}
}

func (a *Accumulator) Press(k Key) {
	a.PressAt(k, time.Time{})
}

// PressAt records a press seen at now. Only presses with a timestamp are
// candidates for ReleaseStale.
func (a *Accumulator) PressAt(k Key, now time.Time) {
	switch k {
	case KeyLeft:
		a.horizontal = -1
		a.dir = k
	case KeyRight:
		a.horizontal = 1
		a.dir = k
	case KeyJump:
		a.jump = true
	case KeyQuit:
		a.quit = true
		return
	default:
		return
	}
	if !now.IsZero() {
		a.held[k] = now
	} else {
		delete(a.held, k)
	}
}

func (a *Accumulator) Release(k Key) {
	switch k {
	case KeyLeft, KeyRight:
		a.horizontal = 0
		a.dir = 0
		delete(a.held, KeyLeft)
		delete(a.held, KeyRight)
	case KeyJump:
		a.jump = false
		delete(a.held, KeyJump)
	}
}

// ReleaseStale releases every timestamped key not pressed again within
// hold. Terminal hosts only see key repeats, never releases, and use this
// to end a hold. A stale direction that was overridden by the other
// direction is forgotten without stopping the current one.
func (a *Accumulator) ReleaseStale(now time.Time, hold time.Duration) {
	for k, at := range a.held {
		if now.Sub(at) <= hold {
			continue
		}
		if (k == KeyLeft || k == KeyRight) && k != a.dir {
			delete(a.held, k)
			continue
		}
		a.Release(k)
	}
}

// Set replaces the whole state with a polled snapshot, for hosts that
// read key state directly instead of receiving events.
func (a *Accumulator) Set(in motion.Input, quit bool) {
	in = in.Normalized()
	a.horizontal = in.Horizontal
	a.jump = in.Jump
	a.quit = a.quit || quit
	a.dir = 0
	clear(a.held)
}

func (a *Accumulator) Snapshot() motion.Input {
	return motion.Input{Horizontal: a.horizontal, Jump: a.jump}
}

func (a *Accumulator) QuitRequested() bool {
	return a.quit
}

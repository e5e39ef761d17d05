package input

import (
	"testing"
	"time"

	"github.com/milk9111/platformdemo/motion"
)

type event struct {
	key   Key
	press bool
}

func TestAccumulatorEvents(t *testing.T) {
	cases := []struct {
		name     string
		events   []event
		want     motion.Input
		wantQuit bool
	}{
		{"empty", nil, motion.Input{}, false},
		{"left", []event{{KeyLeft, true}}, motion.Input{Horizontal: -1}, false},
		{"right", []event{{KeyRight, true}}, motion.Input{Horizontal: 1}, false},
		{"last_direction_wins", []event{{KeyLeft, true}, {KeyRight, true}}, motion.Input{Horizontal: 1}, false},
		{"release_either_stops", []event{{KeyLeft, true}, {KeyRight, true}, {KeyLeft, false}}, motion.Input{}, false},
		{"jump_held", []event{{KeyJump, true}, {KeyRight, true}}, motion.Input{Horizontal: 1, Jump: true}, false},
		{"jump_released", []event{{KeyJump, true}, {KeyJump, false}}, motion.Input{}, false},
		{"quit_latches", []event{{KeyQuit, true}, {KeyQuit, false}}, motion.Input{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAccumulator()
			for _, e := range c.events {
				if e.press {
					a.Press(e.key)
				} else {
					a.Release(e.key)
				}
			}
			if got := a.Snapshot(); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
			if a.QuitRequested() != c.wantQuit {
				t.Fatalf("expected quit=%v", c.wantQuit)
			}
		})
	}
}

func TestAccumulatorReleaseStale(t *testing.T) {
	a := NewAccumulator()
	base := time.Unix(100, 0)
	hold := 150 * time.Millisecond

	a.PressAt(KeyRight, base)
	a.PressAt(KeyJump, base.Add(100*time.Millisecond))

	a.ReleaseStale(base.Add(120*time.Millisecond), hold)
	if got := a.Snapshot(); got != (motion.Input{Horizontal: 1, Jump: true}) {
		t.Fatalf("nothing should be stale yet, got %+v", got)
	}

	a.ReleaseStale(base.Add(200*time.Millisecond), hold)
	if got := a.Snapshot(); got != (motion.Input{Jump: true}) {
		t.Fatalf("expected right released, got %+v", got)
	}

	// A repeat refreshes the hold.
	a.PressAt(KeyJump, base.Add(240*time.Millisecond))
	a.ReleaseStale(base.Add(300*time.Millisecond), hold)
	if !a.Snapshot().Jump {
		t.Fatalf("repeated jump should still be held")
	}

	a.ReleaseStale(base.Add(time.Second), hold)
	if got := a.Snapshot(); got != (motion.Input{}) {
		t.Fatalf("expected everything released, got %+v", got)
	}
}

func TestAccumulatorReleaseStaleKeepsCurrentDirection(t *testing.T) {
	a := NewAccumulator()
	base := time.Unix(100, 0)
	hold := 150 * time.Millisecond

	a.PressAt(KeyLeft, base)
	a.PressAt(KeyRight, base.Add(100*time.Millisecond))
	a.PressAt(KeyRight, base.Add(180*time.Millisecond))

	a.ReleaseStale(base.Add(200*time.Millisecond), hold)
	if got := a.Snapshot(); got != (motion.Input{Horizontal: 1}) {
		t.Fatalf("stale left should not stop a repeated right, got %+v", got)
	}

	a.ReleaseStale(base.Add(400*time.Millisecond), hold)
	if got := a.Snapshot(); got != (motion.Input{}) {
		t.Fatalf("expected right released once stale, got %+v", got)
	}
}

func TestAccumulatorSet(t *testing.T) {
	a := NewAccumulator()
	a.Set(motion.Input{Horizontal: -4, Jump: true}, false)
	if got := a.Snapshot(); got != (motion.Input{Horizontal: -1, Jump: true}) {
		t.Fatalf("expected clamped snapshot, got %+v", got)
	}
	a.Set(motion.Input{}, true)
	a.Set(motion.Input{}, false)
	if !a.QuitRequested() {
		t.Fatalf("quit should stay latched")
	}
}

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformdemo/autopilot"
	"github.com/milk9111/platformdemo/common"
	"github.com/milk9111/platformdemo/geom"
	"github.com/milk9111/platformdemo/input"
	"github.com/milk9111/platformdemo/motion"
)

// keyHold is how long a key counts as held after its last press or
// repeat. Terminals never report key releases.
const keyHold = 150 * time.Millisecond

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 0, 40))
	wallStyle       = backgroundStyle.Foreground(tcell.ColorAqua)
	playerStyle     = backgroundStyle.Foreground(tcell.ColorFuchsia)
	statusStyle     = backgroundStyle.Foreground(tcell.ColorWhite)
)

type Game struct {
	screen tcell.Screen
	world  *motion.World
	keys   *input.Accumulator
	clock  *common.Clock
	pilot  *autopilot.Autopilot
	delay  time.Duration
	view   geom.Rect
}

func NewGame(screen tcell.Screen, world *motion.World, pilot *autopilot.Autopilot, delay time.Duration) *Game {
	if delay <= 0 {
		delay = common.FrameDelay
	}
	return &Game{
		screen: screen,
		world:  world,
		keys:   input.NewAccumulator(),
		clock:  common.NewClock(),
		pilot:  pilot,
		delay:  delay,
		view:   fitView(&world.Walls, world.Tuning.Start),
	}
}

// handleEvent folds one terminal event into the input state.
func (g *Game) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			g.keys.Press(input.KeyQuit)
		case tcell.KeyLeft:
			g.keys.PressAt(input.KeyLeft, now)
		case tcell.KeyRight:
			g.keys.PressAt(input.KeyRight, now)
		case tcell.KeyUp:
			g.keys.PressAt(input.KeyJump, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a':
				g.keys.PressAt(input.KeyLeft, now)
			case 'd':
				g.keys.PressAt(input.KeyRight, now)
			case ' ', 'w':
				g.keys.PressAt(input.KeyJump, now)
			case 'r':
				g.world.Reset()
			case 'q':
				g.keys.Press(input.KeyQuit)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// run drives update then draw until quit is requested.
func (g *Game) run() error {
	ticker := time.NewTicker(g.delay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			g.handleEvent(ev, time.Now())
		case now := <-ticker.C:
			g.keys.ReleaseStale(now, keyHold)
			if g.keys.QuitRequested() {
				return nil
			}
			if err := g.update(); err != nil {
				return err
			}
			g.draw()
		}
	}
}

func (g *Game) update() error {
	in := g.keys.Snapshot()
	if g.pilot != nil {
		next, err := g.pilot.Next(g.world.Player, g.world.Ticks())
		if err != nil {
			return err
		}
		in = next
	}
	g.world.Step(in, g.clock.Tick())
	return nil
}

func (g *Game) draw() {
	g.screen.SetStyle(backgroundStyle)
	g.screen.Clear()

	cols, rows := g.screen.Size()
	// last row is the status line
	v := viewport{world: g.view, cols: cols, rows: rows - 1}

	for _, w := range g.world.Walls {
		g.outline(v, w, '#', wallStyle)
	}
	p := g.world.Player
	g.outline(v, p.CollisionRect, '+', playerStyle)
	if c, ok := v.project(p.Rect); ok {
		g.screen.SetContent(c.x0, c.y0, '@', nil, playerStyle)
	}

	status := fmt.Sprintf("pos (%.1f, %.1f)  vel (%.1f, %.1f)  %s  landing=%s  [arrows/wasd, space, r reset, esc quit]",
		p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.State(), g.world.Tuning.Landing)
	if g.pilot != nil {
		status += "  autopilot=" + g.pilot.Name()
	}
	g.text(0, rows-1, status, statusStyle)

	g.screen.Show()
}

func (g *Game) outline(v viewport, r geom.Rect, ch rune, style tcell.Style) {
	c, ok := v.project(r)
	if !ok {
		return
	}
	for x := c.x0; x <= c.x1; x++ {
		g.screen.SetContent(x, c.y0, ch, nil, style)
		g.screen.SetContent(x, c.y1, ch, nil, style)
	}
	for y := c.y0; y <= c.y1; y++ {
		g.screen.SetContent(c.x0, y, ch, nil, style)
		g.screen.SetContent(c.x1, y, ch, nil, style)
	}
}

func (g *Game) text(x, y int, s string, style tcell.Style) {
	cols, _ := g.screen.Size()
	for _, r := range s {
		if x >= cols {
			return
		}
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

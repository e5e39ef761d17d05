package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformdemo/autopilot"
	"github.com/milk9111/platformdemo/common"
	"github.com/milk9111/platformdemo/config"
	"github.com/milk9111/platformdemo/geom"
	"github.com/milk9111/platformdemo/input"
	"github.com/milk9111/platformdemo/motion"
	"golang.org/x/image/colornames"
)

var backgroundColor = color.RGBA{R: 0, G: 0, B: 40, A: 255}

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	world *motion.World
	keys  *input.Accumulator
	clock *common.Clock
	pilot *autopilot.Autopilot

	configPath string
	landing    string
	watcher    *config.Watcher

	pauseUI *ebitenui.UI
}

// Options are the command-line choices the game keeps for hot reloads.
type Options struct {
	ConfigPath string
	Landing    string
	Pilot      *autopilot.Autopilot
	Debug      bool
}

func NewGame(cfg *config.File, opts Options) *Game {
	g := &Game{
		debug:      opts.Debug,
		world:      motion.NewWorld(cfg.Tuning()),
		keys:       input.NewAccumulator(),
		clock:      common.NewClock(),
		pilot:      opts.Pilot,
		configPath: opts.ConfigPath,
		landing:    opts.Landing,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// Watch hot-reloads tuning whenever the config file changes.
func (g *Game) Watch(w *config.Watcher) {
	g.watcher = w
}

func (g *Game) Update() error {
	g.frames++

	pollKeyboard(g.keys)
	if g.quit || g.keys.QuitRequested() {
		return ebiten.Termination
	}

	g.drainWatcher()
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reloadTuning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		g.clock.Restart()
		return nil
	}

	in := g.keys.Snapshot()
	if g.pilot != nil {
		next, err := g.pilot.Next(g.world.Player, g.world.Ticks())
		if err != nil {
			log.Printf("autopilot %s stopped: %v", g.pilot.Name(), err)
			g.pilot = nil
		} else {
			in = next
		}
	}

	g.world.Step(in, g.clock.Tick())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	p := g.world.Player
	strokeRect(screen, p.CollisionRect, colornames.Magenta)
	fillRect(screen, p.Rect, colornames.Magenta)

	for _, w := range g.world.Walls {
		strokeRect(screen, w, colornames.Cyan)
	}

	if g.debug {
		msg := fmt.Sprintf("Frames: %d  FPS: %.2f  tick: %d\npos: (%.2f, %.2f)  vel: (%.2f, %.2f)  %s\nlanding: %s",
			g.frames, ebiten.ActualFPS(), g.world.Ticks(),
			p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.State(),
			g.world.Tuning.Landing)
		if g.pilot != nil {
			msg += "  autopilot: " + g.pilot.Name()
		}
		ebitenutil.DebugPrint(screen, msg)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadTuning()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watcher: %v", err)
		default:
			return
		}
	}
}

// reloadTuning swaps in the tuning from disk, keeping the current tuning
// when the file does not load.
func (g *Game) reloadTuning() {
	cfg, err := loadConfig(g.configPath, g.landing)
	if err != nil {
		log.Printf("reload tuning: %v", err)
		return
	}
	g.world.SetTuning(cfg.Tuning())
	log.Printf("tuning reloaded (landing=%s, pixel_snap=%v)", cfg.Tuning().Landing, cfg.PixelSnap)
}

func strokeRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, clr, false)
}

func fillRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

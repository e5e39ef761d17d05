// Command headless steps the platform demo without a window and prints the
// player state, for checking tuning and landing rules from a shell.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/platformdemo/autopilot"
	"github.com/milk9111/platformdemo/config"
	"github.com/milk9111/platformdemo/motion"
)

type options struct {
	ticks int
	dt    float64
	every int

	input motion.Input
	pilot *autopilot.Autopilot
}

func main() {
	configPath := flag.String("config", "", "tuning file (defaults to config/default.yaml, then the embedded copy)")
	landing := flag.String("landing", "", "override landing rule: last_write, first_wall or any_below")
	pilotName := flag.String("autopilot", "", "drive the player with a tengo script (embedded name or path)")
	ticks := flag.Int("ticks", 300, "number of steps to run")
	dt := flag.Float64("dt", 1.0/60, "seconds per step")
	every := flag.Int("every", 1, "print every n-th step")
	horizontal := flag.Int("horizontal", 0, "constant horizontal input (-1, 0, 1) when no autopilot is set")
	jump := flag.Bool("jump", false, "hold jump for the whole run when no autopilot is set")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	tuning := cfg.Tuning()
	if *landing != "" {
		if tuning.Landing, err = motion.ParseLandingRule(*landing); err != nil {
			log.Fatal(err)
		}
	}

	opts := options{
		ticks: *ticks,
		dt:    *dt,
		every: *every,
		input: motion.Input{Horizontal: *horizontal, Jump: *jump},
	}
	if *pilotName != "" {
		if opts.pilot, err = autopilot.Load(*pilotName); err != nil {
			log.Fatal(err)
		}
	}

	if err := run(os.Stdout, motion.NewWorld(tuning), opts); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, world *motion.World, opts options) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", opts.ticks)
	}
	if opts.every <= 0 {
		opts.every = 1
	}

	if _, err := fmt.Fprintln(w, "tick\tx\ty\tvx\tvy\tstate"); err != nil {
		return err
	}
	for i := 0; i < opts.ticks; i++ {
		in := opts.input
		if opts.pilot != nil {
			next, err := opts.pilot.Next(world.Player, world.Ticks())
			if err != nil {
				return err
			}
			in = next
		}
		world.Step(in, opts.dt)

		if (i+1)%opts.every != 0 && i != opts.ticks-1 {
			continue
		}
		p := world.Player
		if _, err := fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%s\n",
			world.Ticks(), p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.State()); err != nil {
			return err
		}
	}
	return nil
}

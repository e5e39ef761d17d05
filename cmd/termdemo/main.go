// Command termdemo runs the platform demo in a terminal.
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformdemo/autopilot"
	"github.com/milk9111/platformdemo/config"
	"github.com/milk9111/platformdemo/motion"
)

func main() {
	configPath := flag.String("config", "", "tuning file (defaults to config/default.yaml, then the embedded copy)")
	landing := flag.String("landing", "", "override landing rule: last_write, first_wall or any_below")
	pilotName := flag.String("autopilot", "", "drive the player with a tengo script (embedded name or path)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	tuning := cfg.Tuning()
	if *landing != "" {
		tuning.Landing, err = motion.ParseLandingRule(*landing)
		if err != nil {
			log.Fatal(err)
		}
	}

	var pilot *autopilot.Autopilot
	if *pilotName != "" {
		if pilot, err = autopilot.Load(*pilotName); err != nil {
			log.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	game := NewGame(screen, motion.NewWorld(tuning), pilot, cfg.FrameDelay())
	err = game.run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

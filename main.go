package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformdemo/autopilot"
	"github.com/milk9111/platformdemo/config"
	"github.com/milk9111/platformdemo/motion"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	configPath := flag.String("config", "", "tuning file (defaults to config/default.yaml, then the embedded copy)")
	watch := flag.Bool("watch", false, "reload tuning when the config file changes")
	landing := flag.String("landing", "", "override landing rule: last_write, first_wall or any_below")
	pilotName := flag.String("autopilot", "", "drive the player with a tengo script (embedded name or path)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *landing)
	if err != nil {
		log.Fatal(err)
	}

	var pilot *autopilot.Autopilot
	if *pilotName != "" {
		pilot, err = autopilot.Load(*pilotName)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("platformdemo")
	if d := cfg.FrameDelay(); d > 0 {
		ebiten.SetTPS(int(time.Second / d))
	}

	game := NewGame(cfg, Options{
		ConfigPath: *configPath,
		Landing:    *landing,
		Pilot:      pilot,
		Debug:      *debug,
	})

	if *watch {
		if path, ok := config.WatchPath(*configPath); !ok {
			log.Printf("watch: %s not found, using embedded tuning", path)
		} else {
			w, err := config.NewWatcher(path)
			if err != nil {
				log.Fatalf("watch %s: %v", path, err)
			}
			defer w.Close()
			game.Watch(w)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadConfig loads the tuning file and applies a landing rule given on the
// command line.
func loadConfig(path, landing string) (*config.File, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if landing != "" {
		if _, err := motion.ParseLandingRule(landing); err != nil {
			return nil, err
		}
		cfg.LandingRule = landing
	}
	return cfg, nil
}

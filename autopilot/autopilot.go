// Package autopilot drives the player from a tengo script instead of the
// keyboard, for attract-mode demos and headless runs.
//
// A script sees the globals tick, x, y, vx, vy and grounded, and sets
// horizontal (-1, 0 or 1) and jump. It runs once per tick from the top;
// horizontal and jump are reset to 0 and false before each run.
package autopilot

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformdemo/motion"
)

//go:embed scripts/*.tengo
var scriptsFS embed.FS

type Autopilot struct {
	name     string
	compiled *tengo.Compiled
}

// Load compiles a script. name is either a path to a .tengo file on disk
// or the base name of an embedded script ("demo", "hop.tengo").
func Load(name string) (*Autopilot, error) {
	src, err := readScript(name)
	if err != nil {
		return nil, err
	}
	return Compile(name, src)
}

// Compile builds an autopilot from script source.
func Compile(name string, src []byte) (*Autopilot, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	globals := map[string]any{
		"tick":       0,
		"x":          0.0,
		"y":          0.0,
		"vx":         0.0,
		"vy":         0.0,
		"grounded":   false,
		"horizontal": 0,
		"jump":       false,
	}
	for k, v := range globals {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("autopilot: %s: add %s: %w", name, k, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}
	return &Autopilot{name: name, compiled: compiled}, nil
}

func (a *Autopilot) Name() string {
	return a.name
}

// Next runs the script against the player's current state and returns the
// input for the coming tick.
func (a *Autopilot) Next(p *motion.Player, tick uint64) (motion.Input, error) {
	c := a.compiled
	set := []struct {
		name string
		v    any
	}{
		{"tick", int64(tick)},
		{"x", p.Position.X},
		{"y", p.Position.Y},
		{"vx", p.Velocity.X},
		{"vy", p.Velocity.Y},
		{"grounded", p.Grounded},
		{"horizontal", 0},
		{"jump", false},
	}
	for _, s := range set {
		if err := c.Set(s.name, s.v); err != nil {
			return motion.Input{}, fmt.Errorf("autopilot: %s: set %s: %w", a.name, s.name, err)
		}
	}

	// RunContext turns VM panics such as integer division by zero into
	// errors; Run would let them unwind the host.
	if err := c.RunContext(context.Background()); err != nil {
		return motion.Input{}, fmt.Errorf("autopilot: run %s: %w", a.name, err)
	}

	in := motion.Input{
		Horizontal: c.Get("horizontal").Int(),
		Jump:       c.Get("jump").Bool(),
	}
	return in.Normalized(), nil
}

// Names lists the embedded scripts without their extension.
func Names() []string {
	entries, err := fs.ReadDir(scriptsFS, "scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	sort.Strings(names)
	return names
}

func readScript(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("autopilot: empty script name")
	}
	if strings.ContainsAny(name, `/\`) {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("autopilot: read %s: %w", name, err)
		}
		return data, nil
	}

	clean := name
	if !strings.HasSuffix(clean, ".tengo") {
		clean += ".tengo"
	}
	data, err := scriptsFS.ReadFile(path.Join("scripts", clean))
	if err != nil {
		return nil, fmt.Errorf("autopilot: unknown script %q (have %s): %w", name, strings.Join(Names(), ", "), err)
	}
	return data, nil
}

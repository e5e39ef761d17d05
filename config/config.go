package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/platformdemo/geom"
	"github.com/milk9111/platformdemo/motion"
	"gopkg.in/yaml.v3"
)

// DefaultName is the embedded tuning file. A file with the same name under
// the config/ directory of the working directory takes precedence.
const DefaultName = "default.yaml"

//go:embed default.yaml
var defaultsFS embed.FS

// File is the tuning document.
type File struct {
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	JumpVelocity    float64 `yaml:"jump_velocity"`
	Gravity         float64 `yaml:"gravity"`

	CollisionSize   float64 `yaml:"collision_size"`
	CollisionOffset float64 `yaml:"collision_offset"`
	VisualSize      float64 `yaml:"visual_size"`

	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`

	PixelSnap   bool   `yaml:"pixel_snap"`
	LandingRule string `yaml:"landing_rule"`

	FrameDelayMS int `yaml:"frame_delay_ms"`
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
}

// Default returns the embedded defaults.
func Default() (*File, error) {
	data, err := defaultsFS.ReadFile(DefaultName)
	if err != nil {
		return nil, fmt.Errorf("config: read embedded %s: %w", DefaultName, err)
	}
	var f File
	if err := decode(data, &f); err != nil {
		return nil, fmt.Errorf("config: unmarshal embedded %s: %w", DefaultName, err)
	}
	return &f, nil
}

// Load reads the tuning file at path on top of the embedded defaults, so a
// file only needs the keys it changes. An empty path loads config/default.yaml
// from disk when present and the embedded copy otherwise.
func Load(path string) (*File, error) {
	f, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := read(path)
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := decode(data, f); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", displayName(path), err)
	}
	return f, nil
}

// DiskPath returns where an override of the embedded defaults is looked up.
func DiskPath() string {
	return filepath.Join("config", DefaultName)
}

func read(path string) ([]byte, error) {
	if path == "" {
		data, err := os.ReadFile(DiskPath())
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", DiskPath(), err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return data, nil
}

func decode(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func displayName(path string) string {
	if path == "" {
		return DefaultName
	}
	return path
}

// Validate rejects values the simulation cannot run with.
func (f *File) Validate() error {
	numbers := []struct {
		name string
		v    float64
	}{
		{"horizontal_speed", f.HorizontalSpeed},
		{"jump_velocity", f.JumpVelocity},
		{"gravity", f.Gravity},
		{"collision_size", f.CollisionSize},
		{"collision_offset", f.CollisionOffset},
		{"visual_size", f.VisualSize},
		{"start_x", f.StartX},
		{"start_y", f.StartY},
	}
	for _, n := range numbers {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			return fmt.Errorf("%s must be finite", n.name)
		}
	}

	if f.CollisionSize <= 0 {
		return fmt.Errorf("collision_size must be positive, got %v", f.CollisionSize)
	}
	if f.VisualSize <= 0 {
		return fmt.Errorf("visual_size must be positive, got %v", f.VisualSize)
	}
	if f.FrameDelayMS < 0 {
		return fmt.Errorf("frame_delay_ms must not be negative, got %d", f.FrameDelayMS)
	}
	if f.WindowWidth <= 0 || f.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", f.WindowWidth, f.WindowHeight)
	}
	if _, err := motion.ParseLandingRule(f.LandingRule); err != nil {
		return err
	}
	return nil
}

// Tuning converts the file into resolver tuning. The file must have passed
// Validate.
func (f *File) Tuning() motion.Tuning {
	rule, _ := motion.ParseLandingRule(f.LandingRule)
	return motion.Tuning{
		HorizontalSpeed: f.HorizontalSpeed,
		JumpVelocity:    f.JumpVelocity,
		Gravity:         f.Gravity,
		CollisionSize:   f.CollisionSize,
		CollisionOffset: f.CollisionOffset,
		VisualSize:      f.VisualSize,
		Start:           geom.V(f.StartX, f.StartY),
		PixelSnap:       f.PixelSnap,
		Landing:         rule,
	}
}

func (f *File) FrameDelay() time.Duration {
	return time.Duration(f.FrameDelayMS) * time.Millisecond
}

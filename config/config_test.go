package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/platformdemo/common"
	"github.com/milk9111/platformdemo/geom"
	"github.com/milk9111/platformdemo/motion"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultMatchesStartupTuning(t *testing.T) {
	f, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	if got, want := f.Tuning(), motion.DefaultTuning(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if f.FrameDelay() != common.FrameDelay {
		t.Fatalf("expected frame delay %v, got %v", common.FrameDelay, f.FrameDelay())
	}
	if f.WindowWidth != common.BaseWidth || f.WindowHeight != common.BaseHeight {
		t.Fatalf("unexpected window size %dx%d", f.WindowWidth, f.WindowHeight)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tuning.yaml", "gravity: 400\nlanding_rule: any_below\nstart_x: 300\n")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tun := f.Tuning()
	if tun.Gravity != 400 {
		t.Fatalf("expected gravity 400, got %v", tun.Gravity)
	}
	if tun.Landing != motion.LandingAnyBelow {
		t.Fatalf("expected any_below, got %v", tun.Landing)
	}
	if tun.Start != geom.V(300, 128) {
		t.Fatalf("expected start (300,128), got %v", tun.Start)
	}
	if tun.HorizontalSpeed != motion.HorizontalSpeed {
		t.Fatalf("untouched keys should keep defaults, got horizontal_speed %v", tun.HorizontalSpeed)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Tuning() != motion.DefaultTuning() {
		t.Fatalf("empty file should yield defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown_key", "gravty: 10\n", "gravty"},
		{"bad_type", "gravity: heavy\n", "unmarshal"},
		{"zero_collision", "collision_size: 0\n", "collision_size"},
		{"negative_visual", "visual_size: -2\n", "visual_size"},
		{"bad_rule", "landing_rule: nearest\n", "landing rule"},
		{"bad_window", "window_width: 0\n", "window size"},
		{"negative_delay", "frame_delay_ms: -1\n", "frame_delay_ms"},
		{"nan", "gravity: .nan\n", "gravity must be finite"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "tuning.yaml", c.body)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWatchPath(t *testing.T) {
	t.Chdir(t.TempDir())

	if path, ok := WatchPath(""); ok {
		t.Fatalf("expected nothing to watch without a disk file, got %s", path)
	}

	if path, ok := WatchPath("tuning.yaml"); !ok || path != "tuning.yaml" {
		t.Fatalf("expected explicit path to be watched, got %s %v", path, ok)
	}

	if err := os.MkdirAll(filepath.Dir(DiskPath()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, ".", DiskPath(), "gravity: 100\n")
	if path, ok := WatchPath(""); !ok || path != DiskPath() {
		t.Fatalf("expected disk override to be watched, got %s %v", path, ok)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tuning.yaml", "gravity: 100\n")
	writeFile(t, dir, "other.txt", "ignored")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "other.txt", "still ignored")
	writeFile(t, dir, "tuning.yaml", "gravity: 200\n")

	abs, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != abs {
			t.Fatalf("expected event for %s, got %s", abs, got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

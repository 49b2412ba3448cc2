package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return f
}

func TestDefaults(t *testing.T) {
	f := parse(t)

	cfg := f.GameConfig()
	if cfg.Width != 32 || cfg.Height != 24 {
		t.Errorf("grid = %dx%d, want 32x24", cfg.Width, cfg.Height)
	}
	interval, err := f.TickInterval()
	if err != nil {
		t.Fatal(err)
	}
	if interval != 50*time.Millisecond {
		t.Errorf("interval = %v, want 50ms", interval)
	}
}

func TestTickIntervalRejectsZeroSpeed(t *testing.T) {
	f := parse(t, "-speed", "0")
	if _, err := f.TickInterval(); err == nil {
		t.Error("zero speed accepted")
	}
	if _, err := f.Build(); err == nil {
		t.Error("Build accepted zero speed")
	}
}

func TestBuildRejectsTinyGrid(t *testing.T) {
	f := parse(t, "-width", "1", "-mute")
	if _, err := f.Build(); err == nil {
		t.Error("Build accepted a 1-wide grid")
	}
}

func TestBuildAutopilotSavesTable(t *testing.T) {
	table := filepath.Join(t.TempDir(), "q", "table.json")
	f := parse(t, "-autopilot", "-mute", "-seed", "9", "-qtable", table, "-width", "12", "-height", "10")

	s, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !s.Driver.Autopilot() {
		t.Fatal("autopilot flag ignored")
	}

	start := time.Unix(0, 0)
	s.Driver.Update(start)
	if _, err := s.Driver.Update(start.Add(200 * time.Millisecond)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	s.Close()

	if _, err := os.Stat(table); err != nil {
		t.Errorf("q-table not saved: %v", err)
	}
}

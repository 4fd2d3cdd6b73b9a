package core

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"casim/internal/rules"
)

func TestFromMapOverridesAndClamps(t *testing.T) {
	cfg := FromMap(map[string]string{
		"family":   "ant",
		"rule":     "rrl",
		"rows":     "1",
		"cols":     "5000",
		"cell":     "0",
		"wrap":     "false",
		"seed":     "7",
		"interval": "2",
		"ants":     "1,2; 3,4,1,2 ; bad; 5",
	})
	if cfg.Family != rules.Ant || cfg.Rule != "rrl" {
		t.Fatalf("family/rule not applied: %+v", cfg)
	}
	if cfg.Rows != MinDimension || cfg.Columns != MaxDimension {
		t.Fatalf("dimensions not clamped: %dx%d", cfg.Rows, cfg.Columns)
	}
	if cfg.CellSize != MinCellSize || cfg.IntervalMS != MinInterval {
		t.Fatalf("cell size/interval not clamped: %d %d", cfg.CellSize, cfg.IntervalMS)
	}
	if cfg.Wrap || cfg.Seed != 7 {
		t.Fatalf("wrap/seed not applied: %+v", cfg)
	}
	want := []AntSpec{{X: 1, Y: 2}, {X: 3, Y: 4, Direction: 1, Type: 2}}
	if !slices.Equal(cfg.Ants, want) {
		t.Fatalf("ants = %+v, want %+v", cfg.Ants, want)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	cfg := FromMap(map[string]string{"rows": "ten", "wrap": "maybe", "family": "4d"})
	def := DefaultConfig()
	if cfg.Rows != def.Rows || cfg.Wrap != def.Wrap || cfg.Family != def.Family {
		t.Fatalf("garbage values should be ignored: %+v", cfg)
	}
}

func TestFromMapPresetThenRule(t *testing.T) {
	cfg := FromMap(map[string]string{"preset": "rule90"})
	if cfg.Family != rules.Elementary || cfg.Rule != rules.Rule90 {
		t.Fatalf("preset not applied: %+v", cfg)
	}
	cfg = FromMap(map[string]string{"preset": "rule90", "rule": "11110000"})
	if cfg.Family != rules.Elementary || cfg.Rule != "11110000" {
		t.Fatalf("explicit rule should override the preset rule: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ant.yaml")
	data := []byte(`family: ant
rows: 40
columns: 30
wrap: false
rule: lr
interval_ms: 250
ants:
  - {x: 5, y: 6, direction: 2, type: 3}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Family != rules.Ant || cfg.Rows != 40 || cfg.Columns != 30 || cfg.Wrap || cfg.Rule != "lr" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.CellSize != DefaultConfig().CellSize {
		t.Fatalf("unset fields should keep defaults, cell size %d", cfg.CellSize)
	}
	if cfg.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %s", cfg.Interval())
	}
	if len(cfg.Ants) != 1 || cfg.Ants[0] != (AntSpec{X: 5, Y: 6, Direction: 2, Type: 3}) {
		t.Fatalf("ants = %+v", cfg.Ants)
	}
}

func TestParseConfigRejectsUnknownFamily(t *testing.T) {
	if _, err := ParseConfig([]byte("family: hex\n")); err == nil {
		t.Fatal("unknown family should fail to decode")
	}
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestConfigParameters(t *testing.T) {
	snap := DefaultConfig().Parameters()
	if v, ok := snap.Lookup("rule"); !ok || v != rules.Life {
		t.Fatalf("rule parameter = %q, %v", v, ok)
	}
	if v, ok := snap.Lookup("wrap"); !ok || v != "true" {
		t.Fatalf("wrap parameter = %q, %v", v, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected parameter")
	}
}

func TestFixedStepInterval(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the interval elapses")
	}
	now = now.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once the interval elapsed")
	}
	fs.SetInterval(0)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("non-positive interval should fall back, got %s", fs.Interval())
	}
}

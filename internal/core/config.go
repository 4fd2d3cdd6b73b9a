package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"casim/internal/rules"

	"gopkg.in/yaml.v3"
)

// Launcher limits applied to values read from flags and maps.
const (
	MinDimension = 2
	MaxDimension = 2000
	MinCellSize  = 1
	MaxCellSize  = 50
	MinInterval  = 5
	MaxInterval  = 10000
)

// AntSpec places an initial agent.
type AntSpec struct {
	X         int `yaml:"x"`
	Y         int `yaml:"y"`
	Direction int `yaml:"direction"`
	Type      int `yaml:"type"`
}

// Config describes one simulation. Rows is ignored by the 1D family except
// as the default height of its history strip.
type Config struct {
	Family     rules.Family `yaml:"family"`
	Rows       int          `yaml:"rows"`
	Columns    int          `yaml:"columns"`
	CellSize   int          `yaml:"cell_size"`
	Wrap       bool         `yaml:"wrap"`
	Rule       string       `yaml:"rule"`
	History    int          `yaml:"history"`
	Seed       int64        `yaml:"seed"`
	IntervalMS int          `yaml:"interval_ms"`
	Ants       []AntSpec    `yaml:"ants"`
}

// DefaultConfig returns the launcher defaults: a wrapping 10x10 Life grid.
func DefaultConfig() Config {
	return Config{
		Family:     rules.Totalistic,
		Rows:       10,
		Columns:    10,
		CellSize:   4,
		Wrap:       true,
		Rule:       rules.Life,
		IntervalMS: 100,
	}
}

// Interval is the delay between automatic advances.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields from a string map. Unparseable values are ignored
// and numeric values are clamped to the launcher limits.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["family"]; ok {
		if parsed, err := rules.ParseFamily(v); err == nil {
			c.Family = parsed
		}
	}
	if v, ok := cfg["preset"]; ok {
		if p, found := rules.LookupPreset(v); found {
			c.Family = p.Family
			c.Rule = p.Rule
		}
	}
	if v, ok := cfg["rule"]; ok {
		c.Rule = v
	}
	if v, ok := lookup(cfg, "rows", "h"); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rows = clamp(parsed, MinDimension, MaxDimension)
		}
	}
	if v, ok := lookup(cfg, "cols", "columns", "w"); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Columns = clamp(parsed, MinDimension, MaxDimension)
		}
	}
	if v, ok := lookup(cfg, "cell", "cell_size"); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.CellSize = clamp(parsed, MinCellSize, MaxCellSize)
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.History = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := lookup(cfg, "interval", "interval_ms"); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.IntervalMS = clamp(parsed, MinInterval, MaxInterval)
		}
	}
	if v, ok := cfg["ants"]; ok {
		c.Ants = ParseAnts(v)
	}
	return c
}

// ParseAnts reads "x,y[,direction[,type]]" entries separated by ';'.
// Malformed entries are skipped.
func ParseAnts(s string) []AntSpec {
	var out []AntSpec
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Split(entry, ",")
		if len(fields) < 2 || len(fields) > 4 {
			continue
		}
		vals := make([]int, 4)
		ok := true
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		out = append(out, AntSpec{X: vals[0], Y: vals[1], Direction: vals[2], Type: vals[3]})
	}
	return out
}

// LoadConfigFile decodes a YAML configuration on top of DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("core: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration bytes on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("core: decode config: %w", err)
	}
	return c, nil
}

// Parameters summarizes the configuration for display.
func (c Config) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Grid",
			Params: []Parameter{
				IntParam("rows", "Rows", c.Rows),
				IntParam("cols", "Columns", c.Columns),
				IntParam("cell", "Cell size", c.CellSize),
				BoolParam("wrap", "Wrap", c.Wrap),
			},
		},
		{
			Name: "Rule",
			Params: []Parameter{
				StringParam("family", "Family", c.Family.String()),
				StringParam("rule", "Rule", c.Rule),
				IntParam("interval", "Interval (ms)", c.IntervalMS),
			},
		},
	}}
}

func lookup(cfg map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := cfg[k]; ok {
			return v, true
		}
	}
	return "", false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

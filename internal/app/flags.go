package app

import (
	"flag"
	"fmt"
	"strings"

	"casim/internal/core"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Options represents the launcher parameters shared by the viewer and the
// headless runner.
type Options struct {
	ConfigPath string
	Overrides  []string
	TPS        int

	values map[string]string
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{TPS: 60, values: map[string]string{}}
}

var shortcuts = []struct {
	key, usage string
}{
	{"family", "rule family: elementary, totalistic or ant"},
	{"preset", "named rule preset (sets family and rule)"},
	{"rule", "rule string for the selected family"},
	{"rows", "grid rows (1D: history height)"},
	{"cols", "grid columns"},
	{"cell", "cell size in pixels"},
	{"history", "1D history rows"},
	{"seed", "reset seed; 0 starts from an empty grid"},
	{"interval", "milliseconds between advances"},
	{"ants", "initial ants as x,y[,dir[,type]];..."},
}

// Bind attaches the options to the provided FlagSet. Shortcut flags only
// override the configuration when given explicitly.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "YAML configuration file")
	fs.Var((*kvList)(&o.Overrides), "set", "configuration override in key=value form (repeatable)")
	fs.IntVar(&o.TPS, "tps", o.TPS, "viewer ticks per second")
	for _, s := range shortcuts {
		key := s.key
		fs.Func(key, s.usage, func(v string) error {
			o.values[key] = v
			return nil
		})
	}
	fs.BoolFunc("wrap", "wrap edges toroidally", func(v string) error {
		o.values["wrap"] = v
		return nil
	})
}

// Config resolves the final configuration: defaults or the YAML file, then
// shortcut flags, then -set overrides in order.
func (o *Options) Config() (core.Config, error) {
	cfg := core.DefaultConfig()
	if o.ConfigPath != "" {
		loaded, err := core.LoadConfigFile(o.ConfigPath)
		if err != nil {
			return core.Config{}, err
		}
		cfg = loaded
	}
	values := make(map[string]string, len(o.values)+len(o.Overrides))
	for k, v := range o.values {
		values[k] = v
	}
	for _, kv := range o.Overrides {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return core.Config{}, fmt.Errorf("app: override %q is not key=value", kv)
		}
		values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return cfg.Apply(values), nil
}

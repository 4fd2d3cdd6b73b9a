package rules

import (
	"sort"
	"strings"
)

// Well-known rule strings.
const (
	Life          = "tm3=1|tm2=x"
	HighLife      = "tm3=1|tm6=1|tm2=x"
	LiveFreeOrDie = "tm2=1|tm0=x"
	LinkBreaker   = "tb2=1|tb1=x"
	Rule90        = "01011010"
	Rule30        = "00011110"
	Rule110       = "01101110"
	LangtonsAnt   = "rl"
)

// Preset pairs a named rule with its family.
type Preset struct {
	Name   string
	Family Family
	Rule   string
}

var presets = map[string]Preset{
	"life":          {Name: "life", Family: Totalistic, Rule: Life},
	"highlife":      {Name: "highlife", Family: Totalistic, Rule: HighLife},
	"livefreeordie": {Name: "livefreeordie", Family: Totalistic, Rule: LiveFreeOrDie},
	"linkbreaker":   {Name: "linkbreaker", Family: Totalistic, Rule: LinkBreaker},
	"rule90":        {Name: "rule90", Family: Elementary, Rule: Rule90},
	"rule30":        {Name: "rule30", Family: Elementary, Rule: Rule30},
	"rule110":       {Name: "rule110", Family: Elementary, Rule: Rule110},
	"langton":       {Name: "langton", Family: Ant, Rule: LangtonsAnt},
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

package rules

import (
	"fmt"
	"strings"
)

// Family selects which rule language and engine a simulation uses.
type Family uint8

const (
	// Elementary is the 1D eight-entry binary lookup table.
	Elementary Family = iota
	// Totalistic is the 2D threshold language (tb/tm/x clauses).
	Totalistic
	// Ant is the l/r turn sequence driving multi-ant simulations.
	Ant
)

// Families lists every supported family in declaration order.
func Families() []Family {
	return []Family{Elementary, Totalistic, Ant}
}

func (f Family) String() string {
	switch f {
	case Elementary:
		return "elementary"
	case Totalistic:
		return "totalistic"
	case Ant:
		return "ant"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

// ParseFamily resolves a family name. Short aliases used by the launcher
// ("1d", "2d") are accepted.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "elementary", "1d":
		return Elementary, nil
	case "totalistic", "2d":
		return Totalistic, nil
	case "ant", "ants", "langton":
		return Ant, nil
	}
	return 0, &SyntaxError{Rule: name, Clause: -1, Kind: KindUnknownFamily}
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so families can be read
// from configuration files.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

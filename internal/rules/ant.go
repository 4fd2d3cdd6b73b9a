package rules

// ReachableAntStates is the number of rule positions an 8-bit cell state can
// select. Longer rules are accepted; their later positions are never used.
const ReachableAntStates = 256

// Turn is a single token of an ant rule.
type Turn uint8

const (
	TurnLeft Turn = iota
	TurnRight
)

func (t Turn) String() string {
	if t == TurnLeft {
		return "l"
	}
	return "r"
}

// AntRule maps a cell state (the index) to the turn taken on it.
type AntRule []Turn

// ParseAnt parses a rule of lowercase l and r tokens such as "rl".
func ParseAnt(rule string) (AntRule, error) {
	r, err := scanAnt(rule)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanAnt(rule string) (AntRule, *SyntaxError) {
	if len(rule) == 0 {
		return nil, &SyntaxError{Family: Ant, Rule: rule, Clause: -1, Kind: KindBadLength}
	}
	turns := make(AntRule, len(rule))
	for i := 0; i < len(rule); i++ {
		switch rule[i] {
		case 'l':
			turns[i] = TurnLeft
		case 'r':
			turns[i] = TurnRight
		default:
			return nil, &SyntaxError{Family: Ant, Rule: rule, Clause: i, Kind: KindBadSymbol}
		}
	}
	return turns, nil
}

// States is the number of distinct cell states the rule cycles through.
func (r AntRule) States() int { return min(len(r), ReachableAntStates) }

func (r AntRule) String() string {
	b := make([]byte, len(r))
	for i, t := range r {
		b[i] = t.String()[0]
	}
	return string(b)
}

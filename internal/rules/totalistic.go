package rules

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Kind tags which neighborhood sum a totalistic clause compares against.
type Kind uint8

const (
	// CardinalThreshold clauses ("tb") compare against the sum of the four
	// orthogonal neighbors.
	CardinalThreshold Kind = iota
	// MooreThreshold clauses ("tm") compare against the sum of all eight
	// neighbors.
	MooreThreshold
	// Unconditional clauses ("x") always match. A numeric left-hand side is
	// validated and then dropped.
	Unconditional
)

func (k Kind) prefix() string {
	switch k {
	case CardinalThreshold:
		return "tb"
	case MooreThreshold:
		return "tm"
	default:
		return "x"
	}
}

// Normalized left-hand side of every x clause.
const NoCondition = -2

// Normalized symbolic outcomes.
const (
	Keep      = -1 // x
	Increment = -2 // x+1
	Decrement = -3 // x-1
)

// Clause is one parsed "<prefix><lhs>=<rhs>" term.
type Clause struct {
	Kind Kind
	LHS  int
	RHS  int
}

func (c Clause) String() string {
	lhs := ""
	if c.LHS != NoCondition {
		lhs = strconv.Itoa(c.LHS)
	}
	var rhs string
	switch c.RHS {
	case Keep:
		rhs = "x"
	case Increment:
		rhs = "x+1"
	case Decrement:
		rhs = "x-1"
	default:
		rhs = strconv.Itoa(c.RHS)
	}
	return c.Kind.prefix() + lhs + "=" + rhs
}

// Outcome resolves the clause's right-hand side against the cell's current
// state. Increment and decrement saturate at 255 and 0.
func (c Clause) Outcome(current uint8) uint8 {
	switch c.RHS {
	case Keep:
		return current
	case Increment:
		if current == math.MaxUint8 {
			return current
		}
		return current + 1
	case Decrement:
		if current == 0 {
			return 0
		}
		return current - 1
	default:
		return uint8(c.RHS)
	}
}

// RuleSet groups parsed clauses by kind, each in declaration order.
type RuleSet struct {
	Cardinal []Clause
	Moore    []Clause
	Self     []Clause
}

// Len reports the total number of clauses.
func (rs RuleSet) Len() int { return len(rs.Cardinal) + len(rs.Moore) + len(rs.Self) }

// Next computes a cell's next state. tb clauses are applied first, then tm,
// then x; within each group the last matching clause wins. x clauses always
// match, so the last one present decides the outcome. With no match the cell
// becomes 0.
func (rs RuleSet) Next(current uint8, cardinal, moore int) uint8 {
	var next uint8
	for _, c := range rs.Cardinal {
		if cardinal == c.LHS {
			next = c.Outcome(current)
		}
	}
	for _, c := range rs.Moore {
		if moore == c.LHS {
			next = c.Outcome(current)
		}
	}
	for _, c := range rs.Self {
		next = c.Outcome(current)
	}
	return next
}

func (rs RuleSet) String() string {
	parts := make([]string, 0, rs.Len())
	for _, group := range [][]Clause{rs.Cardinal, rs.Moore, rs.Self} {
		for _, c := range group {
			parts = append(parts, c.String())
		}
	}
	return strings.Join(parts, "|")
}

// ParseTotalistic parses a rule such as "tm3=1|tm2=x". Input is
// case-insensitive and whitespace is ignored.
func ParseTotalistic(rule string) (RuleSet, error) {
	rs, err := scanTotalistic(rule)
	if err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

func scanTotalistic(rule string) (RuleSet, *SyntaxError) {
	var rs RuleSet
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, rule)

	for i, text := range strings.Split(normalized, "|") {
		c, kind := scanClause(text)
		if kind != "" {
			return RuleSet{}, &SyntaxError{Family: Totalistic, Rule: rule, Clause: i, Kind: kind}
		}
		switch c.Kind {
		case CardinalThreshold:
			rs.Cardinal = append(rs.Cardinal, c)
		case MooreThreshold:
			rs.Moore = append(rs.Moore, c)
		default:
			rs.Self = append(rs.Self, c)
		}
	}
	return rs, nil
}

func scanClause(text string) (Clause, ErrorKind) {
	var c Clause
	switch {
	case strings.HasPrefix(text, "tb"):
		c.Kind = CardinalThreshold
	case strings.HasPrefix(text, "tm"):
		c.Kind = MooreThreshold
	case strings.HasPrefix(text, "x"):
		c.Kind = Unconditional
	default:
		return c, KindUnknownPrefix
	}

	terms := strings.Split(strings.TrimPrefix(text, c.Kind.prefix()), "=")
	if len(terms) != 2 {
		return c, KindClauseArity
	}
	lhs, rhs := terms[0], terms[1]

	switch {
	case strings.ContainsAny(lhs, "+-.^"):
		return c, KindLHSOperator
	case lhs == "":
		if c.Kind != Unconditional {
			return c, KindEmptyLHS
		}
		c.LHS = NoCondition
	default:
		v, kind := parseLiteral(lhs, 32)
		if kind != "" {
			return c, kind
		}
		c.LHS = v
	}
	if c.Kind == Unconditional {
		c.LHS = NoCondition
	}

	switch rhs {
	case "":
		return c, KindEmptyRHS
	case "x":
		c.RHS = Keep
	case "x+1":
		c.RHS = Increment
	case "x-1":
		c.RHS = Decrement
	default:
		v, kind := parseLiteral(rhs, 8)
		if kind != "" {
			return c, kind
		}
		c.RHS = v
	}
	return c, ""
}

// parseLiteral accepts decimal digits only and bounds the value to a
// non-negative integer of the given signed bit size (8 means a cell state).
func parseLiteral(s string, bits int) (int, ErrorKind) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, KindNotNumeric
		}
	}
	if bits == 8 {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return 0, KindOutOfRange
		}
		return int(v), ""
	}
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, KindOutOfRange
	}
	return int(v), ""
}

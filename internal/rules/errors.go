package rules

import (
	"errors"
	"fmt"
)

// ErrRuleSyntax matches every *SyntaxError via errors.Is.
var ErrRuleSyntax = errors.New("rule syntax error")

// ErrorKind classifies why a rule string was rejected.
type ErrorKind string

const (
	KindUnknownPrefix ErrorKind = "unknown-prefix"
	KindClauseArity   ErrorKind = "clause-arity"
	KindNotNumeric    ErrorKind = "not-numeric"
	KindLHSOperator   ErrorKind = "lhs-operator"
	KindEmptyLHS      ErrorKind = "empty-lhs"
	KindEmptyRHS      ErrorKind = "empty-rhs"
	KindOutOfRange    ErrorKind = "out-of-range"
	KindBadLength     ErrorKind = "bad-length"
	KindBadSymbol     ErrorKind = "bad-symbol"
	KindUnknownFamily ErrorKind = "unknown-family"
)

// SyntaxError reports a malformed rule string.
type SyntaxError struct {
	Family Family
	Rule   string
	// Clause is the zero-based clause index for totalistic rules, or the
	// offending character offset for the other families. -1 when the error
	// concerns the rule as a whole.
	Clause int
	Kind   ErrorKind
}

func (e *SyntaxError) Error() string {
	msg := describe(e.Kind)
	switch {
	case e.Kind == KindUnknownFamily:
		return fmt.Sprintf("rules: %s %q", msg, e.Rule)
	case e.Clause < 0:
		return fmt.Sprintf("rules: %s rule %q: %s", e.Family, e.Rule, msg)
	case e.Family == Totalistic:
		return fmt.Sprintf("rules: %s rule %q: clause %d: %s", e.Family, e.Rule, e.Clause+1, msg)
	default:
		return fmt.Sprintf("rules: %s rule %q: position %d: %s", e.Family, e.Rule, e.Clause, msg)
	}
}

// Is reports whether target is ErrRuleSyntax.
func (e *SyntaxError) Is(target error) bool { return target == ErrRuleSyntax }

func describe(k ErrorKind) string {
	switch k {
	case KindUnknownPrefix:
		return "clause must start with tb, tm or x"
	case KindClauseArity:
		return "clause must have exactly one '='"
	case KindNotNumeric:
		return "term must be a non-negative number"
	case KindLHSOperator:
		return "left-hand side cannot contain an operator"
	case KindEmptyLHS:
		return "left-hand side may only be empty for x clauses"
	case KindEmptyRHS:
		return "right-hand side cannot be empty"
	case KindOutOfRange:
		return "value out of range"
	case KindBadLength:
		return "wrong rule length"
	case KindBadSymbol:
		return "unexpected character"
	case KindUnknownFamily:
		return "unknown rule family"
	default:
		return string(k)
	}
}

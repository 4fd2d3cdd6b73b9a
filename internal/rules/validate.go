package rules

// Validate reports whether rule is well formed for the family. It never
// panics and accepts exactly the strings the family's parser accepts, so it
// is safe to call on every keystroke.
func Validate(rule string, f Family) bool {
	return Check(rule, f) == nil
}

// Check is Validate with the reason attached. The returned error, when
// non-nil, is always a *SyntaxError.
func Check(rule string, f Family) error {
	var err *SyntaxError
	switch f {
	case Elementary:
		_, err = scanElementary(rule)
	case Totalistic:
		_, err = scanTotalistic(rule)
	case Ant:
		_, err = scanAnt(rule)
	default:
		err = &SyntaxError{Family: f, Rule: rule, Clause: -1, Kind: KindUnknownFamily}
	}
	if err != nil {
		return err
	}
	return nil
}

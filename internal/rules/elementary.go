package rules

import "strings"

// ElementaryLength is the number of characters in a 1D rule.
const ElementaryLength = 8

// ElementaryTable holds the outcome for each neighborhood pattern in the
// canonical order 111, 110, 101, 100, 011, 010, 001, 000.
type ElementaryTable [ElementaryLength]uint8

// ParseElementary parses an eight-character binary rule such as "01011010".
func ParseElementary(rule string) (ElementaryTable, error) {
	t, err := scanElementary(rule)
	if err != nil {
		return ElementaryTable{}, err
	}
	return t, nil
}

func scanElementary(rule string) (ElementaryTable, *SyntaxError) {
	var t ElementaryTable
	if len(rule) != ElementaryLength {
		return t, &SyntaxError{Family: Elementary, Rule: rule, Clause: -1, Kind: KindBadLength}
	}
	for i := 0; i < len(rule); i++ {
		switch rule[i] {
		case '0':
			t[i] = 0
		case '1':
			t[i] = 1
		default:
			return t, &SyntaxError{Family: Elementary, Rule: rule, Clause: i, Kind: KindBadSymbol}
		}
	}
	return t, nil
}

// ElementaryFromCode converts a Wolfram code (0-255) to its rule string.
func ElementaryFromCode(code uint8) string {
	var b strings.Builder
	for bit := ElementaryLength - 1; bit >= 0; bit-- {
		if code&(1<<bit) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Lookup returns the outcome for a neighborhood given which cells are
// active.
func (t ElementaryTable) Lookup(left, self, right bool) uint8 {
	pattern := 0
	if left {
		pattern |= 4
	}
	if self {
		pattern |= 2
	}
	if right {
		pattern |= 1
	}
	return t[7-pattern]
}

// Code returns the Wolfram code of the table.
func (t ElementaryTable) Code() uint8 {
	var code uint8
	for i, v := range t {
		if v != 0 {
			code |= 1 << (7 - i)
		}
	}
	return code
}

func (t ElementaryTable) String() string {
	return ElementaryFromCode(t.Code())
}

package core

import (
	"errors"
	"fmt"

	"casim/internal/rules"
)

// ErrDimension matches every *DimensionError via errors.Is.
var ErrDimension = errors.New("grid dimensions too small")

// ErrPlacement matches every *PlacementError via errors.Is.
var ErrPlacement = errors.New("agent placement invalid")

// DimensionError reports a grid smaller than its family allows.
type DimensionError struct {
	Family  rules.Family
	Rows    int
	Columns int
}

func (e *DimensionError) Error() string {
	if e.Family == rules.Elementary {
		return fmt.Sprintf("core: %s line needs at least 2 columns, got %d", e.Family, e.Columns)
	}
	return fmt.Sprintf("core: %s grid must be at least 2x2, got %dx%d", e.Family, e.Rows, e.Columns)
}

// Is reports whether target is ErrDimension.
func (e *DimensionError) Is(target error) bool { return target == ErrDimension }

// CheckDimensions validates grid size for a family. 1D lines only constrain
// the column count.
func CheckDimensions(f rules.Family, rows, columns int) error {
	if columns < 2 || (f != rules.Elementary && rows < 2) {
		return &DimensionError{Family: f, Rows: rows, Columns: columns}
	}
	return nil
}

// PlacementError reports an initial agent that cannot be placed.
type PlacementError struct {
	Agent  AntSpec
	Reason string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("core: ant at (%d,%d): %s", e.Agent.X, e.Agent.Y, e.Reason)
}

// Is reports whether target is ErrPlacement.
func (e *PlacementError) Is(target error) bool { return target == ErrPlacement }

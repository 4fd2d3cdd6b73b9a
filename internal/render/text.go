package render

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"

	"casim/internal/core"
)

const glyphs = ".#23456789abcdefghijklmnopqrstuvwxyz"

// AntGlyph marks a cell occupied by an ant.
const AntGlyph = '@'

// Glyph returns the character used for a cell state in text output.
func Glyph(v uint8) byte {
	if int(v) < len(glyphs) {
		return glyphs[v]
	}
	return '+'
}

type antMarker interface {
	AntCells() []int
}

// WriteText prints the simulation one row per line. 1D lines print their
// history strip, newest generation first; ants are drawn over their cells.
func WriteText(w io.Writer, sim core.Sim) error {
	cells, size := sim.Cells(), sim.Size()
	if f, ok := sim.(core.Framer); ok {
		cells, size = f.Frame(), f.FrameSize()
	}
	var ants map[int]bool
	if m, ok := sim.(antMarker); ok {
		ants = make(map[int]bool)
		for _, i := range m.AntCells() {
			ants[i] = true
		}
	}

	bw := bufio.NewWriter(w)
	line := make([]byte, size.W+1)
	line[size.W] = '\n'
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			i := y*size.W + x
			line[x] = Glyph(cells[i])
			if ants[i] {
				line[x] = AntGlyph
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteParameters prints a parameter snapshot as aligned label/value rows
// grouped under their headings.
func WriteParameters(w io.Writer, snap core.ParameterSnapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, g := range snap.Groups {
		fmt.Fprintf(tw, "[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(tw, "  %s\t%s\n", p.Label, p.Value)
		}
	}
	return tw.Flush()
}

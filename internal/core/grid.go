package core

// Dir names one of the four cardinal neighbor links.
type Dir uint8

const (
	Right Dir = iota
	Up
	Left
	Down
)

// Grid stores byte-sized cell states in row-major order together with the
// previous state of every cell and a resolved cardinal link table.
//
// Index Len() is reserved for the boundary sentinel used by non-wrapping
// grids: its links point to itself and its state is always 0. Diagonal
// neighbors are derived by chaining two cardinal links.
type Grid struct {
	Rows, Columns int
	CellSize      int
	Wrap          bool

	state []uint8
	prev  []uint8
	links [][4]int
}

// NewGrid allocates a grid and wires its neighbor links. Callers validate
// dimensions with CheckDimensions first; values below 1 are raised to 1.
func NewGrid(rows, columns, cellSize int, wrap bool) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if columns <= 0 {
		columns = 1
	}
	n := rows * columns
	g := &Grid{
		Rows:     rows,
		Columns:  columns,
		CellSize: cellSize,
		Wrap:     wrap,
		state:    make([]uint8, n+1),
		prev:     make([]uint8, n+1),
		links:    make([][4]int, n+1),
	}
	g.link()
	return g
}

func (g *Grid) link() {
	n := g.Rows * g.Columns
	cols := g.Columns
	edge := func(wrapped int) int {
		if g.Wrap {
			return wrapped
		}
		return n
	}
	for i := 0; i < n; i++ {
		l := &g.links[i]
		if i >= cols {
			l[Up] = i - cols
		} else {
			l[Up] = edge(i + cols*(g.Rows-1))
		}
		if i < (g.Rows-1)*cols {
			l[Down] = i + cols
		} else {
			l[Down] = edge(i % cols)
		}
		if i%cols != 0 {
			l[Left] = i - 1
		} else {
			l[Left] = edge(i + cols - 1)
		}
		if (i+1)%cols != 0 {
			l[Right] = i + 1
		} else {
			l[Right] = edge(i - cols + 1)
		}
	}
	g.links[n] = [4]int{n, n, n, n}
}

// Len returns the number of live cells.
func (g *Grid) Len() int { return g.Rows * g.Columns }

// Sentinel returns the index of the boundary cell.
func (g *Grid) Sentinel() int { return g.Rows * g.Columns }

// IsBoundary reports whether i refers to the boundary sentinel.
func (g *Grid) IsBoundary(i int) bool { return i == g.Sentinel() }

// Cells exposes the live cell states so callers can read/write them directly.
func (g *Grid) Cells() []uint8 {
	n := g.Len()
	return g.state[:n:n]
}

// Prev exposes each cell's state prior to the last advance.
func (g *Grid) Prev() []uint8 {
	n := g.Len()
	return g.prev[:n:n]
}

// State returns the state at i; the sentinel always reads 0.
func (g *Grid) State(i int) uint8 { return g.state[i] }

// PrevState returns the previous state at i.
func (g *Grid) PrevState(i int) uint8 { return g.prev[i] }

// Set writes a state. Writes to the sentinel or outside the grid are
// ignored.
func (g *Grid) Set(i int, v uint8) {
	if i < 0 || i >= g.Len() {
		return
	}
	g.state[i] = v
}

// Increment raises the state at i by one, saturating at 255.
func (g *Grid) Increment(i int) {
	if i < 0 || i >= g.Len() || g.state[i] == 255 {
		return
	}
	g.state[i]++
}

// Decrement lowers the state at i by one, saturating at 0.
func (g *Grid) Decrement(i int) {
	if i < 0 || i >= g.Len() || g.state[i] == 0 {
		return
	}
	g.state[i]--
}

// Index returns the linear index for column x and row y.
func (g *Grid) Index(x, y int) int { return y*g.Columns + x }

// Contains reports whether (x, y) lies on the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Columns && y < g.Rows
}

// Coord returns the column and row of index i.
func (g *Grid) Coord(i int) (x, y int) { return i % g.Columns, i / g.Columns }

// PixelCoord returns the top-left pixel of cell i at the grid's cell size.
func (g *Grid) PixelCoord(i int) (px, py int) {
	x, y := g.Coord(i)
	return x * g.CellSize, y * g.CellSize
}

// Neighbor follows one cardinal link.
func (g *Grid) Neighbor(i int, d Dir) int { return g.links[i][d] }

// Diagonal follows two cardinal links, first a then b.
func (g *Grid) Diagonal(i int, a, b Dir) int { return g.links[g.links[i][a]][b] }

// Moore returns the eight neighbors of i counter-clockwise starting at the
// right: right, up-right, up, up-left, left, down-left, down, down-right.
func (g *Grid) Moore(i int) [8]int {
	l := g.links[i]
	return [8]int{
		l[Right],
		g.links[l[Right]][Up],
		l[Up],
		g.links[l[Left]][Up],
		l[Left],
		g.links[l[Left]][Down],
		l[Down],
		g.links[l[Down]][Right],
	}
}

// Sums returns the cardinal neighbor sum and the full Moore sum of cell i.
func (g *Grid) Sums(i int) (cardinal, moore int) {
	l := g.links[i]
	cardinal = int(g.state[l[Right]]) + int(g.state[l[Up]]) + int(g.state[l[Left]]) + int(g.state[l[Down]])
	diagonal := int(g.state[g.links[l[Up]][Left]]) + int(g.state[g.links[l[Up]][Right]]) +
		int(g.state[g.links[l[Down]][Left]]) + int(g.state[g.links[l[Down]][Right]])
	return cardinal, cardinal + diagonal
}

// Clear zeroes every cell state and previous state.
func (g *Grid) Clear() {
	for i := range g.state {
		g.state[i] = 0
		g.prev[i] = 0
	}
}

// Randomize fills the live cells with 0/1 values derived from seed.
func (g *Grid) Randomize(seed int64) {
	FillBinary(NewRNG(seed).Source(), g.Cells())
}

package core

// IntGrid stores a 2D grid of signed cell values in column-major order, so
// that walking y for a fixed x touches contiguous memory.
type IntGrid struct {
	W, H int
	data []int
}

// NewIntGrid allocates a zeroed grid. Negative dimensions collapse the grid to
// 0x0.
func NewIntGrid(w, h int) *IntGrid {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &IntGrid{W: w, H: h, data: make([]int, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IntGrid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *IntGrid) Index(x, y int) int { return x*g.H + y }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *IntGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Interior reports whether (x, y) lies strictly inside the outermost ring.
func (g *IntGrid) Interior(x, y int) bool {
	return x >= 1 && y >= 1 && x <= g.W-2 && y <= g.H-2
}

// At returns the value at (x, y). Callers are responsible for bounds.
func (g *IntGrid) At(x, y int) int { return g.data[g.Index(x, y)] }

// Set writes v at (x, y). Callers are responsible for bounds.
func (g *IntGrid) Set(x, y, v int) { g.data[g.Index(x, y)] = v }

// Fill sets every cell to v.
func (g *IntGrid) Fill(v int) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Border writes v into every cell on the four edges.
func (g *IntGrid) Border(v int) {
	if g.W == 0 || g.H == 0 {
		return
	}
	for x := 0; x < g.W; x++ {
		g.Set(x, 0, v)
		g.Set(x, g.H-1, v)
	}
	for y := 0; y < g.H; y++ {
		g.Set(0, y, v)
		g.Set(g.W-1, y, v)
	}
}

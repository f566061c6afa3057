package water

// At returns the classification of (x, y). Coordinates outside the grid read
// as frame.
func (w *Water) At(x, y int) Cell {
	if !w.cells.g.InBounds(x, y) {
		return Cell{Kind: KindFrame}
	}
	return Classify(w.cells.get(x, y))
}

// Fill returns the water fraction held at (x, y).
func (w *Water) Fill(x, y int) float64 {
	return w.At(x, y).Fill()
}

// BelowOpen reports whether the cell under (x, y) can still accept water.
// Partial cells resting on something closed are drawn as a level; open ones
// are still draining.
func (w *Water) BelowOpen(x, y int) bool {
	if !w.cells.g.InBounds(x, y-1) {
		return false
	}
	return w.cells.capacity(x, y-1) > 0
}

// Census counts cells per kind.
type Census struct {
	Frame   int
	Rock    int
	Empty   int
	Partial int
	Full    int
}

// Count returns the number of cells of the given kind.
func (c Census) Count(k Kind) int {
	switch k {
	case KindFrame:
		return c.Frame
	case KindRock:
		return c.Rock
	case KindEmpty:
		return c.Empty
	case KindPartial:
		return c.Partial
	case KindFull:
		return c.Full
	}
	return 0
}

// Census classifies every cell of the grid.
func (w *Water) Census() Census {
	var c Census
	for _, v := range w.cells.g.Cells() {
		switch Classify(v).Kind {
		case KindFrame:
			c.Frame++
		case KindRock:
			c.Rock++
		case KindEmpty:
			c.Empty++
		case KindPartial:
			c.Partial++
		case KindFull:
			c.Full++
		}
	}
	return c
}

// TotalWater sums the units held by every water cell.
func (w *Water) TotalWater() int {
	total := 0
	for _, v := range w.cells.g.Cells() {
		if isWater(v) {
			total += v
		}
	}
	return total
}

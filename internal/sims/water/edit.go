package water

// Place overwrites the cell at (x, y) with saturated water or rock. Only
// strictly interior coordinates are accepted; anything else is ignored.
// Whatever the cell held before is discarded.
func (w *Water) Place(x, y int, kind PlaceKind) {
	if !w.cells.interior(x, y) {
		return
	}
	w.cells.set(x, y, kind.value())
}

// Paint applies Place over the square brush centred on (x, y).
func (w *Water) Paint(x, y int, kind PlaceKind) {
	r := w.cfg.Brush
	if r < 0 {
		r = 0
	}
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			w.Place(x+dx, y+dy, kind)
		}
	}
}

// Clear empties the interior, keeping the frame.
func (w *Water) Clear() {
	w.cells.clearInterior()
}

package app

import "tiledwater/internal/sims/water"

// Editor receives pointer edits.
type Editor interface {
	Paint(x, y int, kind water.PlaceKind)
}

// ApplyButtons turns the button state into edits at (x, y). Water is applied
// before rock, so holding both leaves rock behind.
func ApplyButtons(e Editor, x, y int, left, right bool) {
	if left {
		e.Paint(x, y, water.PlaceWater)
	}
	if right {
		e.Paint(x, y, water.PlaceRock)
	}
}

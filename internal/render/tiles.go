package render

import (
	"image/color"

	"tiledwater/internal/core"
	"tiledwater/internal/sims/water"
)

// Source is the read side of a water grid.
type Source interface {
	Size() core.Size
	At(x, y int) water.Cell
	BelowOpen(x, y int) bool
}

// Tile is what the painter needs to know about one cell.
type Tile struct {
	Kind      water.Kind
	Units     int
	Fill      float64
	BelowOpen bool
}

// TileAt pulls the tile for (x, y) from src.
func TileAt(src Source, x, y int) Tile {
	cell := src.At(x, y)
	t := Tile{Kind: cell.Kind, Units: cell.Units, Fill: cell.Fill()}
	if cell.Kind == water.KindPartial {
		t.BelowOpen = src.BelowOpen(x, y)
	}
	return t
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

var (
	FrameColor = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	WaterColor = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	RockColor  = color.NRGBA{R: 127, G: 127, B: 127, A: 255}
)

// Layout places tile t of grid cell (x, y) on screen. Grid rows grow upward
// while screen rows grow downward, so rows is the grid height. It reports
// false for tiles that draw nothing.
func Layout(t Tile, x, y, size, rows int) (Rect, color.NRGBA, bool) {
	if size <= 0 {
		return Rect{}, color.NRGBA{}, false
	}
	left := float32(x * size)
	top := float32((rows - 1 - y) * size)
	full := Rect{X: left, Y: top, W: float32(size), H: float32(size)}

	switch t.Kind {
	case water.KindFrame:
		return full, FrameColor, true
	case water.KindRock:
		return full, RockColor, true
	case water.KindFull:
		return full, WaterColor, true
	case water.KindPartial:
		if t.BelowOpen {
			// Still draining: a translucent full tile.
			c := WaterColor
			c.A = uint8(t.Fill*255 + 0.5)
			return full, c, true
		}
		// Resting: a level rising from the bottom of the tile.
		h := size * t.Units / water.MaxUnits
		if h <= 0 {
			return Rect{}, color.NRGBA{}, false
		}
		return Rect{X: left, Y: top + float32(size-h), W: float32(size), H: float32(h)}, WaterColor, true
	}
	return Rect{}, color.NRGBA{}, false
}

// ScreenToCell is the inverse of Layout's placement: it maps a cursor
// position to grid coordinates for a viewport gridH pixels tall. It reports
// false when the cursor is left of, above or below the viewport.
func ScreenToCell(mx, my, gridH, tile int) (int, int, bool) {
	if tile <= 0 || mx < 0 || my < 0 || my >= gridH {
		return 0, 0, false
	}
	return mx / tile, (gridH - my - 1) / tile, true
}

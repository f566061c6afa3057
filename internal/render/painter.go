//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TilePainter draws a water grid one filled rectangle per visible cell.
type TilePainter struct {
	tile int
}

// NewTilePainter allocates a painter for the given tile size in pixels.
func NewTilePainter(tile int) *TilePainter {
	if tile <= 0 {
		tile = 1
	}
	return &TilePainter{tile: tile}
}

// Draw pulls every cell of src and paints it onto dst.
func (p *TilePainter) Draw(dst *ebiten.Image, src Source) {
	size := src.Size()
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			r, c, ok := Layout(TileAt(src, x, y), x, y, p.tile, size.H)
			if !ok {
				continue
			}
			vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, false)
		}
	}
}

// TileSize returns the pixel size of one cell.
func (p *TilePainter) TileSize() int { return p.tile }

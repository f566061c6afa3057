//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"tiledwater/internal/render"
	"tiledwater/internal/sims/water"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the grid.
type Overlay struct {
	src          render.Source
	tile         int
	showDraining bool
	showCursor   bool
	showTPS      bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src render.Source, tile int) *Overlay {
	if tile <= 0 {
		tile = 1
	}
	return &Overlay{src: src, tile: tile, showCursor: true}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDraining = !o.showDraining
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCursor = !o.showCursor
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showTPS = !o.showTPS
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.src.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showDraining {
		o.drawDraining(screen)
	}
	if o.showCursor {
		o.drawCursor(screen)
	}
	if o.showTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()), 4, 4)
	}
}

// drawDraining outlines partial cells that still have room below them.
func (o *Overlay) drawDraining(screen *ebiten.Image) {
	size := o.src.Size()
	outline := color.RGBA{R: 255, G: 80, B: 200, A: 255}
	for x := 1; x < size.W-1; x++ {
		for y := 1; y < size.H-1; y++ {
			tile := render.TileAt(o.src, x, y)
			if tile.Kind != water.KindPartial || !tile.BelowOpen {
				continue
			}
			r, _, _ := render.Layout(tile, x, y, o.tile, size.H)
			vector.StrokeRect(screen, r.X+0.5, r.Y+0.5, r.W-1, r.H-1, 1, outline, false)
		}
	}
}

func (o *Overlay) drawCursor(screen *ebiten.Image) {
	size := o.src.Size()
	mx, my := ebiten.CursorPosition()
	if mx >= size.W*o.tile {
		return
	}
	x, y, ok := render.ScreenToCell(mx, my, size.H*o.tile, o.tile)
	if !ok {
		return
	}
	cell := o.src.At(x, y)
	left := float32(x * o.tile)
	top := float32((size.H - 1 - y) * o.tile)
	vector.StrokeRect(screen, left, top, float32(o.tile), float32(o.tile), 1, color.White, false)

	label := fmt.Sprintf("(%d,%d) %s", x, y, cell.Kind)
	if cell.Kind == water.KindPartial {
		label = fmt.Sprintf("%s %d", label, cell.Units)
	}
	ebitenutil.DebugPrintAt(screen, label, 4, size.H*o.tile-16)
}

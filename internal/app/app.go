//go:build ebiten

package app

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tiledwater/internal/core"
	"tiledwater/internal/logging"
	"tiledwater/internal/render"
	"tiledwater/internal/ui"
)

// Grid is the simulation surface the game drives: it steps, accepts pointer
// edits and answers per-cell queries.
type Grid interface {
	core.Sim
	render.Source
	Editor
	Clear()
	TileSize() int
}

// Game adapts a water grid to the ebiten.Game interface.
type Game struct {
	grid    Grid
	painter *render.TilePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *core.FixedStep
	logger  logr.Logger

	tile     int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided grid.
func New(grid Grid, cfg *Config, logger logr.Logger) *Game {
	tile := grid.TileSize()
	if tile <= 0 {
		tile = cfg.Tile
	}
	return &Game{
		grid:     grid,
		painter:  render.NewTilePainter(tile),
		hud:      ui.NewHUD(grid, cfg.HUDWidth),
		overlay:  ui.NewOverlay(grid, tile),
		ticker:   core.NewFixedStep(cfg.SimTPS),
		logger:   logger,
		tile:     tile,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.grid.Reset(seed)
	g.tickOnce = false
	g.logger.V(logging.DEBUG).Info("Grid reset", "seed", seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.V(logging.DEBUG).Info("Pause toggled", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
		g.logger.V(logging.DEBUG).Info("Grid cleared")
	}

	size := g.grid.Size()
	g.hud.Update(size.W * g.tile)
	g.overlay.Update()

	mx, my := ebiten.CursorPosition()
	if mx < size.W*g.tile {
		if x, y, ok := render.ScreenToCell(mx, my, size.H*g.tile, g.tile); ok {
			ApplyButtons(g.grid, x, y,
				ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
				ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
		}
	}

	if (!g.paused && g.ticker.ShouldStep()) || g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.grid)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.grid.Size().W*g.tile, g.tile)
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grid.Size()
	return s.W*g.tile + g.hudWidth, s.H * g.tile
}

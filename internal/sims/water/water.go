package water

import (
	"fmt"

	"tiledwater/internal/core"
)

// Water is a grid of water volumes and obstacles advanced by a local
// diffusion rule once per tick. It is not safe for concurrent use; callers
// serialize edits, Step and queries.
type Water struct {
	cfg   Config
	cells *cellStore
	tick  uint64
}

// New returns a water grid with the provided dimensions. If either dimension
// is negative the grid is empty.
func New(w, h, tileSize int) *Water {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Tile = tileSize
	return NewWithConfig(cfg)
}

// NewWithConfig returns a water grid configured from the provided options.
func NewWithConfig(cfg Config) *Water {
	if cfg.Width < 0 || cfg.Height < 0 {
		cfg.Width, cfg.Height = 0, 0
	}
	return &Water{cfg: cfg, cells: newStore(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (w *Water) Name() string { return "water" }

// Size reports the grid dimensions.
func (w *Water) Size() core.Size { return w.cells.size() }

// TileSize returns the pixel size of one cell.
func (w *Water) TileSize() int { return w.cfg.Tile }

// Tick returns the number of steps taken since the last reset.
func (w *Water) Tick() uint64 { return w.tick }

// Config returns the active configuration.
func (w *Water) Config() Config { return w.cfg }

// Reset empties the interior and scatters rock with the configured chance.
// A zero seed falls back to the configured one.
func (w *Water) Reset(seed int64) {
	w.tick = 0
	w.cells.clearInterior()
	if w.cfg.RockChance <= 0 {
		return
	}
	if seed == 0 {
		seed = w.cfg.Seed
	}
	rng := core.NewRNG(seed)
	size := w.Size()
	for x := 1; x < size.W-1; x++ {
		for y := 1; y < size.H-1; y++ {
			if rng.Chance(w.cfg.RockChance) {
				w.cells.set(x, y, valueRock)
			}
		}
	}
}

// Step advances the grid by exactly one tick.
func (w *Water) Step() {
	diffuse(w.cells)
	w.tick++
}

// Validate checks the frame and volume invariants and reports the first
// violation found.
func (w *Water) Validate() error {
	size := w.Size()
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			v := w.cells.get(x, y)
			if !w.cells.interior(x, y) {
				if v != valueFrame {
					return fmt.Errorf("border cell (%d,%d) holds %d, want frame", x, y, v)
				}
				continue
			}
			if v != valueRock && !isWater(v) {
				return fmt.Errorf("cell (%d,%d) holds %d, outside [0,%d]", x, y, v, MaxUnits)
			}
		}
	}
	return nil
}

func init() {
	core.Register("water", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

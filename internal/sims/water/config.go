package water

import "strconv"

// Config controls the water simulation dimensions and edit behaviour.
type Config struct {
	Width  int
	Height int
	// Tile is the pixel size of one cell. The simulation only carries it.
	Tile int

	// Brush is the radius of the square painted by Paint.
	Brush int

	Seed       int64
	RockChance float64
}

// MaxBrush bounds the brush radius exposed on the HUD.
const MaxBrush = 8

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Tile:   8,
		Seed:   1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range entries keep their defaults. Negative dimensions
// are passed through so NewWithConfig collapses the grid.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Tile = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxBrush {
			c.Brush = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rock_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.RockChance = parsed
		}
	}
	return c
}

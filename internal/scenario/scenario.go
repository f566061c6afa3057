// Package scenario loads initial layouts for headless runs.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tiledwater/internal/sims/water"
)

// Point is an [x, y] grid coordinate.
type Point [2]int

// Pour re-places saturated water at a cell every Every ticks.
type Pour struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Every int `yaml:"every"`
}

// Scenario describes a grid, its initial placements and the run length.
type Scenario struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Steps  int     `yaml:"steps"`
	Rocks  []Point `yaml:"rocks,omitempty"`
	Water  []Point `yaml:"water,omitempty"`
	Pour   *Pour   `yaml:"pour,omitempty"`
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks for invalid values.
func (s *Scenario) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("grid dimensions must be >= 0, got %dx%d", s.Width, s.Height)
	}
	if s.Steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", s.Steps)
	}
	if s.Pour != nil && s.Pour.Every <= 0 {
		return fmt.Errorf("pour.every must be > 0, got %d", s.Pour.Every)
	}
	return nil
}

// DefaultSize fills in the grid dimensions the document left unset.
func (s *Scenario) DefaultSize(w, h int) {
	if s.Width == 0 {
		s.Width = w
	}
	if s.Height == 0 {
		s.Height = h
	}
}

// Apply writes the initial placements. Rocks go first so listed water is not
// buried by a later rock on the same cell.
func (s *Scenario) Apply(w *water.Water) {
	for _, pt := range s.Rocks {
		w.Place(pt[0], pt[1], water.PlaceRock)
	}
	for _, pt := range s.Water {
		w.Place(pt[0], pt[1], water.PlaceWater)
	}
}

// BeforeTick runs the scripted edits due before the given tick.
func (s *Scenario) BeforeTick(w *water.Water, tick int) {
	if s.Pour == nil || s.Pour.Every <= 0 {
		return
	}
	if tick%s.Pour.Every == 0 {
		w.Place(s.Pour.X, s.Pour.Y, water.PlaceWater)
	}
}

package water

import "tiledwater/internal/core"

// cellStore owns the raw cell array. It enforces the frame at construction
// and otherwise performs no classification.
type cellStore struct {
	g *core.IntGrid
}

func newStore(w, h int) *cellStore {
	s := &cellStore{g: core.NewIntGrid(w, h)}
	s.g.Border(valueFrame)
	return s
}

func (s *cellStore) get(x, y int) int { return s.g.At(x, y) }

func (s *cellStore) set(x, y, v int) { s.g.Set(x, y, v) }

func (s *cellStore) size() core.Size { return core.Size{W: s.g.W, H: s.g.H} }

func (s *cellStore) interior(x, y int) bool { return s.g.Interior(x, y) }

// isWater reports whether v lies in the water range [0, MaxUnits].
func isWater(v int) bool { return v >= valueEmpty && v <= MaxUnits }

// capacity is the volume (x, y) can still accept. Obstacles and saturated
// cells accept nothing.
func (s *cellStore) capacity(x, y int) int {
	v := s.g.At(x, y)
	if v >= valueEmpty && v < MaxUnits {
		return MaxUnits - v
	}
	return 0
}

// clearInterior empties every non-frame cell.
func (s *cellStore) clearInterior() {
	s.g.Fill(valueEmpty)
	s.g.Border(valueFrame)
}

package water

// diffuse advances the store by one tick in place.
//
// Columns are swept left to right and each column bottom to top without a
// second buffer: when column x is visited, column x-1 already holds this
// tick's values while column x+1 still holds the previous tick's. Lateral
// spreading therefore leans left, and that bias is part of the rule.
func diffuse(s *cellStore) {
	size := s.size()
	for x := 1; x < size.W-1; x++ {
		for y := 1; y < size.H-1; y++ {
			c := s.get(x, y)
			if !isWater(c) {
				continue
			}

			if down := min(c, s.capacity(x, y-1)); down > 0 {
				s.set(x, y-1, s.get(x, y-1)+down)
				c -= down
				s.set(x, y, c)
			}

			left := min(c, s.capacity(x-1, y))
			right := min(c, s.capacity(x+1, y))
			switch {
			case left > 0 && right > 0:
				total := s.get(x-1, y) + c + s.get(x+1, y)
				avg, rem := total/3, total%3
				s.set(x-1, y, avg)
				s.set(x, y, avg+rem)
				s.set(x+1, y, avg)
			case right > 0:
				total := c + s.get(x+1, y)
				avg, rem := total>>1, total&1
				s.set(x, y, avg+rem)
				s.set(x+1, y, avg)
			case left > 0:
				total := c + s.get(x-1, y)
				avg, rem := total>>1, total&1
				s.set(x, y, avg+rem)
				s.set(x-1, y, avg)
			}
		}
	}
}

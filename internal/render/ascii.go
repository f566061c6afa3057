package render

import (
	"strings"

	"tiledwater/internal/sims/water"
)

// ASCII renders src as text with the top grid row first: '#' frame,
// '%' rock, '~' full, '1'-'9' partial tenths and '.' empty.
func ASCII(src Source) string {
	size := src.Size()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for y := size.H - 1; y >= 0; y-- {
		for x := 0; x < size.W; x++ {
			b.WriteByte(glyph(src.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(c water.Cell) byte {
	switch c.Kind {
	case water.KindFrame:
		return '#'
	case water.KindRock:
		return '%'
	case water.KindFull:
		return '~'
	case water.KindPartial:
		tenths := c.Units / 10
		if tenths < 1 {
			tenths = 1
		}
		return byte('0' + tenths)
	}
	return '.'
}

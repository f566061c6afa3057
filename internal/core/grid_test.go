package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntGridClampsNegativeDimensions(t *testing.T) {
	for _, dims := range [][2]int{{-1, 5}, {5, -1}, {-3, -3}} {
		g := NewIntGrid(dims[0], dims[1])
		assert.Equal(t, 0, g.W, "dims %v", dims)
		assert.Equal(t, 0, g.H, "dims %v", dims)
		assert.Empty(t, g.Cells())
	}
}

func TestIntGridColumnMajorIndex(t *testing.T) {
	g := NewIntGrid(4, 3)
	g.Set(2, 1, 7)
	require.Equal(t, 7, g.Cells()[2*3+1])
	assert.Equal(t, 7, g.At(2, 1))
	assert.Equal(t, g.Index(1, 0)+1, g.Index(1, 1), "y must be the fast axis")
}

func TestIntGridBorder(t *testing.T) {
	g := NewIntGrid(5, 4)
	g.Border(-2)
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			edge := x == 0 || y == 0 || x == g.W-1 || y == g.H-1
			if edge {
				assert.Equal(t, -2, g.At(x, y), "edge (%d,%d)", x, y)
			} else {
				assert.Equal(t, 0, g.At(x, y), "interior (%d,%d)", x, y)
			}
			assert.Equal(t, !edge, g.Interior(x, y), "interior flag (%d,%d)", x, y)
		}
	}

	empty := NewIntGrid(0, 0)
	empty.Border(-2)
	assert.Empty(t, empty.Cells())
}

func TestIntGridInBounds(t *testing.T) {
	g := NewIntGrid(3, 2)
	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(2, 1))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, 2))
	assert.False(t, g.InBounds(-1, 0))
}

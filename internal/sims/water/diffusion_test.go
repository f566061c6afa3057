package water

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiledwater/internal/core"
)

// columns copies the raw grid as cols[x][y].
func columns(w *Water) [][]int {
	size := w.Size()
	cols := make([][]int, size.W)
	for x := range cols {
		cols[x] = make([]int, size.H)
		for y := range cols[x] {
			cols[x][y] = w.cells.get(x, y)
		}
	}
	return cols
}

// framed returns the expected raw grid for a w*h board whose interior is
// empty apart from the given cells.
func framed(w, h int, cells map[[2]int]int) [][]int {
	cols := make([][]int, w)
	for x := range cols {
		cols[x] = make([]int, h)
		for y := range cols[x] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cols[x][y] = valueFrame
			}
		}
	}
	for pt, v := range cells {
		cols[pt[0]][pt[1]] = v
	}
	return cols
}

func TestStepLeftBias(t *testing.T) {
	w := New(5, 5, 8)
	w.Place(2, 1, PlaceRock)
	w.cells.set(2, 2, 60)

	w.Step()
	// (2,2) splits three ways. Column 1 has already been swept so its share
	// stays put, while column 3 is visited afterwards and drains into (3,1).
	want := framed(5, 5, map[[2]int]int{
		{2, 1}: valueRock,
		{1, 2}: 20,
		{2, 2}: 20,
		{3, 1}: 20,
	})
	if diff := cmp.Diff(want, columns(w)); diff != "" {
		t.Fatalf("after first step (-want +got):\n%s", diff)
	}

	w.Step()
	want = framed(5, 5, map[[2]int]int{
		{2, 1}: valueRock,
		{1, 1}: 20,
		{1, 2}: 6,
		{2, 2}: 8,
		{3, 1}: 26,
	})
	if diff := cmp.Diff(want, columns(w)); diff != "" {
		t.Fatalf("after second step (-want +got):\n%s", diff)
	}
	assert.Equal(t, 60, w.TotalWater())
}

func TestStepWaterFalls(t *testing.T) {
	w := New(3, 6, 8)
	w.Place(1, 4, PlaceWater)

	w.Step()
	// The cell drops one row per visit and the sweep runs bottom to top, so
	// a single tick only moves it once.
	assert.Equal(t, MaxUnits, w.cells.get(1, 3))
	assert.Equal(t, valueEmpty, w.cells.get(1, 4))

	for i := 0; i < 3; i++ {
		w.Step()
	}
	assert.Equal(t, MaxUnits, w.cells.get(1, 1))
	assert.Equal(t, MaxUnits, w.TotalWater())
}

func TestStepTwoWaySplitCreditsCenter(t *testing.T) {
	w := New(4, 3, 8)
	w.cells.set(1, 1, 55)

	w.Step()
	// (1,1) only sees room to the right: 55 -> 28 | 27. Then (2,1) only sees
	// room to the left: 27 + 28 -> 28 stays, 27 goes left.
	want := framed(4, 3, map[[2]int]int{{1, 1}: 27, {2, 1}: 28})
	if diff := cmp.Diff(want, columns(w)); diff != "" {
		t.Fatalf("unexpected grid (-want +got):\n%s", diff)
	}
}

func TestStepThreeWayRemainderToCenter(t *testing.T) {
	w := New(5, 3, 8)
	w.cells.set(1, 1, 10)
	w.cells.set(2, 1, 30)
	w.cells.set(3, 1, 12)

	w.Step()
	// x=1: right only, 40 -> 20 | 20.
	// x=2: 20+20+12 = 52 -> 17 | 18 | 17.
	// x=3: left only, 17+18 = 35 -> 17 left, 18 stays.
	want := framed(5, 3, map[[2]int]int{{1, 1}: 17, {2, 1}: 17, {3, 1}: 18})
	require.Empty(t, cmp.Diff(want, columns(w)))
	assert.Equal(t, 52, w.TotalWater())
}

func TestStepSaturatedCellAcceptsNothing(t *testing.T) {
	w := New(3, 5, 8)
	w.cells.set(1, 1, MaxUnits)
	w.cells.set(1, 2, 60)

	w.Step()
	assert.Equal(t, MaxUnits, w.cells.get(1, 1))
	assert.Equal(t, 60, w.cells.get(1, 2))
}

func TestStepFullCellStillSourcesWater(t *testing.T) {
	w := New(4, 3, 8)
	w.Place(1, 1, PlaceWater)

	w.Step()
	assert.Equal(t, 50, w.cells.get(1, 1))
	assert.Equal(t, 50, w.cells.get(2, 1))
}

func TestStepEquilibriumIsFixedPoint(t *testing.T) {
	w := New(7, 6, 8)
	for x := 1; x <= 5; x++ {
		w.Place(x, 1, PlaceWater)
	}
	// A full cell held in a rock cup.
	w.Place(2, 3, PlaceRock)
	w.Place(3, 2, PlaceRock)
	w.Place(4, 3, PlaceRock)
	w.Place(3, 3, PlaceWater)

	before := columns(w)
	for i := 0; i < 5; i++ {
		w.Step()
		if diff := cmp.Diff(before, columns(w)); diff != "" {
			t.Fatalf("step %d changed an equilibrium (-want +got):\n%s", i, diff)
		}
	}
}

func TestStepInvariantsHoldOnRandomBoards(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := core.NewRNG(seed)
		w := New(6+rng.IntN(20), 6+rng.IntN(20), 4)
		size := w.Size()
		for x := 1; x < size.W-1; x++ {
			for y := 1; y < size.H-1; y++ {
				switch rng.IntN(4) {
				case 0:
					w.Place(x, y, PlaceRock)
				case 1:
					w.cells.set(x, y, rng.IntN(MaxUnits+1))
				}
			}
		}

		rocks := map[[2]int]bool{}
		for x := 0; x < size.W; x++ {
			for y := 0; y < size.H; y++ {
				if w.cells.get(x, y) == valueRock {
					rocks[[2]int{x, y}] = true
				}
			}
		}
		total := w.TotalWater()

		for step := 0; step < 200; step++ {
			w.Step()
			require.NoError(t, w.Validate(), "seed %d step %d", seed, step)
			require.Equal(t, total, w.TotalWater(), "seed %d step %d: water not conserved", seed, step)
		}
		for x := 0; x < size.W; x++ {
			for y := 0; y < size.H; y++ {
				isRock := w.cells.get(x, y) == valueRock
				require.Equal(t, rocks[[2]int{x, y}], isRock, "seed %d: rock at (%d,%d) changed", seed, x, y)
			}
		}
	}
}

func TestStepOnDegenerateGrids(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {1, 1}, {2, 5}, {5, 2}, {3, 3}} {
		w := New(dims[0], dims[1], 8)
		assert.NotPanics(t, w.Step, "dims %v", dims)
		assert.NoError(t, w.Validate(), "dims %v", dims)
	}
}

package water

// Raw cell values. Obstacles share the integer domain with water volume.
const (
	valueFrame = -2
	valueRock  = -1
	valueEmpty = 0

	// MaxUnits is the volume held by a saturated cell.
	MaxUnits = 100
)

// Kind classifies a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindPartial
	KindFull
	KindRock
	KindFrame
)

var kindNames = [...]string{
	KindEmpty:   "empty",
	KindPartial: "partial",
	KindFull:    "full",
	KindRock:    "rock",
	KindFrame:   "frame",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Cell is the tagged view of a raw cell value. Units is only meaningful for
// water kinds.
type Cell struct {
	Kind  Kind
	Units int
}

// Classify maps a raw value onto its tagged form. Values outside every known
// range are reported as rock since the sweep treats them as obstacles.
func Classify(v int) Cell {
	switch {
	case v == valueFrame:
		return Cell{Kind: KindFrame}
	case v == valueEmpty:
		return Cell{Kind: KindEmpty}
	case v == MaxUnits:
		return Cell{Kind: KindFull, Units: MaxUnits}
	case v > valueEmpty && v < MaxUnits:
		return Cell{Kind: KindPartial, Units: v}
	default:
		return Cell{Kind: KindRock}
	}
}

// IsWater reports whether the cell can hold water.
func (c Cell) IsWater() bool {
	return c.Kind == KindEmpty || c.Kind == KindPartial || c.Kind == KindFull
}

// Fill returns the water fraction in [0, 1].
func (c Cell) Fill() float64 {
	if !c.IsWater() {
		return 0
	}
	return float64(c.Units) / MaxUnits
}

// PlaceKind selects what an edit writes into a cell.
type PlaceKind uint8

const (
	// PlaceWater writes a saturated water cell.
	PlaceWater PlaceKind = iota
	// PlaceRock writes an obstacle.
	PlaceRock
)

func (p PlaceKind) value() int {
	if p == PlaceRock {
		return valueRock
	}
	return MaxUnits
}

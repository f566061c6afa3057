package water

import (
	"strconv"

	"tiledwater/internal/core"
)

// Parameters publishes the grid settings and live totals for the HUD.
func (w *Water) Parameters() core.ParameterSnapshot {
	size := w.Size()
	census := w.Census()
	total := w.TotalWater()
	waterCells := census.Empty + census.Partial + census.Full
	meanFill := 0.0
	if waterCells > 0 {
		meanFill = float64(total) / float64(waterCells*MaxUnits)
	}
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("tile", "Tile", w.cfg.Tile),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				uintParam("tick", "Tick", w.tick),
				intParam("water_units", "Water units", total),
				intParam("full_cells", "Full cells", census.Full),
				intParam("partial_cells", "Partial cells", census.Partial),
				intParam("rock_cells", "Rock cells", census.Rock),
				floatParam("mean_fill", "Mean fill", meanFill),
			},
		},
		{
			Name: "Edit",
			Params: []core.Parameter{
				intParam("brush", "Brush", w.cfg.Brush),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (w *Water) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush", Label: "Brush", Step: 1, Min: 0, Max: MaxBrush, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable integer parameter.
func (w *Water) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush":
		if value < 0 {
			value = 0
		}
		if value > MaxBrush {
			value = MaxBrush
		}
		w.cfg.Brush = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}

package app

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"tiledwater/internal/logging"
	"tiledwater/internal/metrics"
	"tiledwater/internal/scenario"
	"tiledwater/internal/sims/water"
)

// RunOptions controls a headless run.
type RunOptions struct {
	Steps    int
	LogEvery int
}

// RunResult summarizes a headless run.
type RunResult struct {
	Ticks        uint64
	InitialWater int
	FinalWater   int
	Census       water.Census
}

// RunHeadless drives edits then a step per tick and checks the grid
// invariants after every step. Without a pour source the total volume must
// not change.
func RunHeadless(w *water.Water, sc *scenario.Scenario, opts RunOptions, rec *metrics.Recorder, logger logr.Logger) (RunResult, error) {
	res := RunResult{InitialWater: w.TotalWater()}
	conserve := sc == nil || sc.Pour == nil

	for tick := 0; tick < opts.Steps; tick++ {
		if sc != nil {
			sc.BeforeTick(w, tick)
		}
		start := time.Now()
		w.Step()
		if rec != nil {
			rec.ObserveStep(time.Since(start))
		}

		if err := w.Validate(); err != nil {
			return res, fmt.Errorf("tick %d: %w", w.Tick(), err)
		}
		if conserve {
			if total := w.TotalWater(); total != res.InitialWater {
				return res, fmt.Errorf("tick %d: water not conserved: %d units, started with %d", w.Tick(), total, res.InitialWater)
			}
		}
		if opts.LogEvery > 0 && (tick+1)%opts.LogEvery == 0 {
			logger.V(logging.DEBUG).Info("Progress", "tick", w.Tick(), "water", w.TotalWater())
		}
	}

	res.Ticks = w.Tick()
	res.FinalWater = w.TotalWater()
	res.Census = w.Census()
	if rec != nil {
		rec.ObserveGrid(w)
	}
	logger.V(logging.DEBUG).Info("Run complete", "ticks", res.Ticks, "water", res.FinalWater,
		"full", res.Census.Full, "partial", res.Census.Partial)
	return res, nil
}

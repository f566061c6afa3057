// Package metrics exposes simulation counters in the prometheus format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"tiledwater/internal/sims/water"
)

const namespace = "tws"

var observedKinds = []water.Kind{
	water.KindEmpty,
	water.KindPartial,
	water.KindFull,
	water.KindRock,
	water.KindFrame,
}

// Recorder holds the collectors for one simulation run on a private
// registry.
type Recorder struct {
	registry    *prometheus.Registry
	ticks       prometheus.Counter
	units       prometheus.Gauge
	cells       *prometheus.GaugeVec
	stepSeconds prometheus.Histogram
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of simulation steps taken.",
		}),
		units: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "water_units",
			Help:      "Total water units held by the grid.",
		}),
		cells: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cells",
			Help:      "Number of cells per kind.",
		}, []string{"kind"}),
		stepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_seconds",
			Help:      "Wall time spent in one simulation step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	r.registry.MustRegister(r.ticks, r.units, r.cells, r.stepSeconds)
	return r
}

// ObserveStep records one completed step and its duration.
func (r *Recorder) ObserveStep(elapsed time.Duration) {
	r.ticks.Inc()
	r.stepSeconds.Observe(elapsed.Seconds())
}

// ObserveGrid refreshes the grid gauges.
func (r *Recorder) ObserveGrid(w *water.Water) {
	r.units.Set(float64(w.TotalWater()))
	census := w.Census()
	for _, kind := range observedKinds {
		r.cells.WithLabelValues(kind.String()).Set(float64(census.Count(kind)))
	}
}

// WriteTextfile dumps the registry in the node exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

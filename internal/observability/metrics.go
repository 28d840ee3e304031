package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridfield/windplan/model"
)

// PlannerCollector bundles Prometheus metrics for the layout planner and
// implements core.PlanRecorder so the planner can drive them directly.
type PlannerCollector struct {
	gatherer prometheus.Gatherer

	PlanRuns      *prometheus.CounterVec
	PlanDurations *prometheus.HistogramVec

	PlanEfficiency prometheus.Histogram
	TurbinesPlaced prometheus.Gauge
	CapacityMW     prometheus.Gauge
}

// NewPlannerCollector registers planner Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewPlannerCollector(reg prometheus.Registerer) (*PlannerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "windplan_plan_runs_total",
		Help: "Total number of plan runs, labeled by strategy and outcome (full, underfill, invalid).",
	}, []string{"strategy", "outcome"})
	runs, err := registerCounterVec(reg, runs, "windplan_plan_runs_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "windplan_plan_duration_seconds",
		Help:    "Plan run duration in seconds, labeled by strategy.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
	}, []string{"strategy"})
	durations, err = registerHistogramVec(reg, durations, "windplan_plan_duration_seconds")
	if err != nil {
		return nil, err
	}

	efficiency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "windplan_plan_efficiency",
		Help:    "Placement efficiency (achieved/requested) of finished plan runs.",
		Buckets: []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99, 1},
	})
	efficiency, err = registerHistogram(reg, efficiency, "windplan_plan_efficiency")
	if err != nil {
		return nil, err
	}

	placed, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "windplan_turbines_placed",
		Help: "Turbines placed by the most recent plan run.",
	}), "windplan_turbines_placed")
	if err != nil {
		return nil, err
	}
	capacity, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "windplan_capacity_mw",
		Help: "Achieved capacity in MW of the most recent plan run.",
	}), "windplan_capacity_mw")
	if err != nil {
		return nil, err
	}

	return &PlannerCollector{
		gatherer:       gatherer,
		PlanRuns:       runs,
		PlanDurations:  durations,
		PlanEfficiency: efficiency,
		TurbinesPlaced: placed,
		CapacityMW:     capacity,
	}, nil
}

// RecordPlan satisfies the planner's PlanRecorder interface. Invalid runs
// carry no layout, so the layout-derived series only move on full/underfill.
func (c *PlannerCollector) RecordPlan(strategy, outcome string, seconds float64, layout model.Layout) {
	if c == nil {
		return
	}
	if c.PlanRuns != nil {
		c.PlanRuns.WithLabelValues(strategy, outcome).Inc()
	}
	if c.PlanDurations != nil {
		c.PlanDurations.WithLabelValues(strategy).Observe(seconds)
	}
	if outcome == "invalid" {
		return
	}
	if c.PlanEfficiency != nil {
		c.PlanEfficiency.Observe(layout.Efficiency)
	}
	if c.TurbinesPlaced != nil {
		c.TurbinesPlaced.Set(float64(layout.AchievedCount))
	}
	if c.CapacityMW != nil {
		c.CapacityMW.Set(layout.CapacityMW)
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *PlannerCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

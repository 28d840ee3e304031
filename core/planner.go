package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridfield/windplan/internal/logging"
	"github.com/gridfield/windplan/model"
)

// Strategy selects which placement algorithm a plan run uses. All three
// share the same input/output contract and differ only in how they generate
// candidates, so selection is a tagged value, not an interface hierarchy.
type Strategy int

const (
	StrategyGrid Strategy = iota
	StrategySpiral
	StrategyGreedy
)

func (s Strategy) String() string {
	switch s {
	case StrategyGrid:
		return "grid"
	case StrategySpiral:
		return "spiral"
	case StrategyGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to its tag. Matching is
// case-insensitive; unknown names are an error rather than a default, since
// silently switching algorithms would be worse than failing.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid":
		return StrategyGrid, nil
	case "spiral":
		return StrategySpiral, nil
	case "greedy":
		return StrategyGreedy, nil
	default:
		return StrategyGrid, fmt.Errorf("unknown strategy %q", s)
	}
}

// Plan outcomes as reported to the metrics recorder.
const (
	OutcomeFull      = "full"
	OutcomeUnderfill = "underfill"
	OutcomeInvalid   = "invalid"
)

// PlanRecorder receives telemetry about finished plan runs. Implementations
// must tolerate being called from concurrent Plan invocations.
type PlanRecorder interface {
	RecordPlan(strategy, outcome string, seconds float64, layout model.Layout)
}

// Planner runs placement strategies over site parameters. One Plan call is
// one pure computation: the planner holds no mutable state between calls, so
// a single Planner may serve concurrent callers.
type Planner struct {
	// Tuning holds strategy knobs; zero-valued fields fall back to defaults.
	Tuning Tuning

	// Log receives per-run summaries. Defaults to a noop logger.
	Log logging.Logger

	// Recorder, when set, receives metrics for every run.
	Recorder PlanRecorder
}

// NewPlanner constructs a planner with default tuning.
func NewPlanner(log logging.Logger) *Planner {
	if log == nil {
		log = logging.Noop()
	}
	return &Planner{
		Tuning: DefaultTuning(),
		Log:    log,
	}
}

// Plan validates the site parameters once, runs the selected strategy to
// completion, and assembles the result. Under-fill (achieved < requested)
// is communicated through the returned layout, never as an error.
func (pl *Planner) Plan(ctx context.Context, site model.SiteParams, strategy Strategy) (model.Layout, error) {
	ctx, span := otel.Tracer("windplan/core").Start(ctx, "planner.Plan",
		trace.WithAttributes(
			attribute.String("strategy", strategy.String()),
			attribute.Int("requested_count", site.TurbineCount),
		),
	)
	defer span.End()

	start := time.Now()

	if err := site.Validate(); err != nil {
		pl.record(strategy.String(), OutcomeInvalid, time.Since(start), model.Layout{})
		return model.Layout{}, fmt.Errorf("invalid site parameters: %w", err)
	}

	var placed []Planar
	switch strategy {
	case StrategyGrid:
		placed = planGrid(site)
	case StrategySpiral:
		placed = planSpiral(site, pl.Tuning)
	case StrategyGreedy:
		placed = planGreedy(site, pl.Tuning)
	default:
		pl.record(strategy.String(), OutcomeInvalid, time.Since(start), model.Layout{})
		return model.Layout{}, fmt.Errorf("unknown strategy %d", strategy)
	}

	layout := assemble(site, strategy, placed)

	span.SetAttributes(
		attribute.Int("achieved_count", layout.AchievedCount),
		attribute.Float64("efficiency", layout.Efficiency),
	)

	outcome := OutcomeFull
	if layout.AchievedCount < layout.RequestedCount {
		outcome = OutcomeUnderfill
	}
	pl.record(strategy.String(), outcome, time.Since(start), layout)

	pl.log().Info(ctx, "plan run finished",
		logging.String("strategy", layout.Strategy),
		logging.Int("requested", layout.RequestedCount),
		logging.Int("achieved", layout.AchievedCount),
		logging.Float64("efficiency", layout.Efficiency),
		logging.Float64("capacity_mw", layout.CapacityMW),
	)

	return layout, nil
}

func (pl *Planner) log() logging.Logger {
	if pl.Log == nil {
		return logging.Noop()
	}
	return pl.Log
}

func (pl *Planner) record(strategy, outcome string, d time.Duration, layout model.Layout) {
	if pl.Recorder == nil {
		return
	}
	pl.Recorder.RecordPlan(strategy, outcome, d.Seconds(), layout)
}

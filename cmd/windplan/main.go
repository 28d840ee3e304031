package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/gridfield/windplan/core"
	"github.com/gridfield/windplan/internal/config"
	"github.com/gridfield/windplan/internal/logging"
	"github.com/gridfield/windplan/internal/observability"
	"github.com/gridfield/windplan/model"
	"github.com/gridfield/windplan/store"
)

func main() {
	sitePath := flag.String("site", "configs/site.json", "path to the JSON site scenario")
	tuningPath := flag.String("tuning", "", "optional TOML tuning file (defaults apply when empty)")
	strategyFlag := flag.String("strategy", "", "override the scenario strategy (grid|spiral|greedy)")
	compare := flag.Bool("compare", false, "run all three strategies and print each result")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address after planning")
	redisAddr := flag.String("redis-addr", "", "store layouts in Redis at this address (in-memory when empty)")

	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		panic(fmt.Errorf("failed to initialise tracing: %w", err))
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewPlannerCollector(nil)
	if err != nil {
		panic(fmt.Errorf("failed to register metrics: %w", err))
	}

	tune, err := config.LoadTuning(*tuningPath)
	if err != nil {
		panic(fmt.Errorf("failed to load tuning: %w", err))
	}

	f, err := os.Open(*sitePath)
	if err != nil {
		panic(fmt.Errorf("failed to open site scenario %q: %w", *sitePath, err))
	}
	scenario, err := core.LoadSiteScenario(f)
	f.Close()
	if err != nil {
		panic(fmt.Errorf("failed to load site scenario: %w", err))
	}

	strategies := []core.Strategy{scenario.Strategy}
	if *strategyFlag != "" {
		parsed, err := core.ParseStrategy(*strategyFlag)
		if err != nil {
			panic(err)
		}
		strategies = []core.Strategy{parsed}
	}
	if *compare {
		strategies = []core.Strategy{core.StrategyGrid, core.StrategySpiral, core.StrategyGreedy}
	}

	planner := core.NewPlanner(log)
	planner.Tuning = tune
	planner.Recorder = collector

	var layouts store.LayoutStore
	if *redisAddr != "" {
		layouts = store.NewRedisStore(*redisAddr, "", 0)
	} else {
		layouts = store.NewMemoryStore()
	}
	defer layouts.Close()

	if err := runPlans(ctx, log, planner, layouts, scenario.Site, strategies); err != nil {
		fmt.Fprintf(os.Stderr, "planning failed: %v\n", err)
		os.Exit(1)
	}

	if *metricsAddr != "" {
		fmt.Printf("Serving metrics on http://%s/metrics\n", *metricsAddr)
		http.Handle("/metrics", collector.Handler())
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			panic(err)
		}
	}
}

// runPlans executes one plan per strategy, stores each result under a fresh
// run ID, and prints a placement summary.
func runPlans(
	ctx context.Context,
	log logging.Logger,
	planner *core.Planner,
	layouts store.LayoutStore,
	site model.SiteParams,
	strategies []core.Strategy,
) error {
	for _, strategy := range strategies {
		runID := uuid.NewString()
		runCtx := logging.ContextWithRunID(ctx, runID)
		planner.Log = log.With(logging.String("run_id", runID))

		layout, err := planner.Plan(runCtx, site, strategy)
		if err != nil {
			return fmt.Errorf("strategy %s: %w", strategy, err)
		}

		if err := layouts.Put(runCtx, runID, layout); err != nil {
			log.Warn(runCtx, "failed to store layout", logging.String("error", err.Error()))
		}

		printLayout(runID, layout)
	}
	return nil
}

func printLayout(runID string, layout model.Layout) {
	fmt.Printf("Run %s [%s]: %d/%d turbines, %.1f MW, efficiency %.2f\n",
		runID, layout.Strategy,
		layout.AchievedCount, layout.RequestedCount,
		layout.CapacityMW, layout.Efficiency,
	)
	for _, t := range layout.Turbines {
		fmt.Printf("↳ %-5s %10.6f, %11.6f  %s %.1f MW\n", t.ID, t.Lat, t.Lon, t.Model, t.CapacityMW)
	}
}

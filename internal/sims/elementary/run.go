package elementary

import (
	"io"
	"log/slog"

	"eca/internal/config"
	"eca/internal/render"
)

// RunOptions carries the collaborators of Run.
type RunOptions struct {
	Renderer render.Renderer
	Palette  render.Palette
	Logger   *slog.Logger

	// Workers > 1 splits each step across goroutines.
	Workers int
}

// Result summarizes a completed run.
type Result struct {
	Final       Simulation
	Generations int
}

// Run renders generation 0, then steps and renders until the configured
// number of generations, capped at the cell count, has been produced. A
// renderer error aborts the run.
func Run(sim Simulation, opts RunOptions) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := opts.Renderer
	if r == nil {
		r = render.Discard
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = render.DefaultPalette()
	}

	cfg := sim.Config()
	total := cfg.EffectiveGenerations()
	if cfg.Capped() {
		log.Info("generations capped at cell count",
			"requested", int(cfg.Generations), "cells", cfg.Cells)
	}
	if cfg.Neighborhood != config.ElementaryNeighborhood {
		log.Warn("neighborhood size ignored by wolfram rules",
			"configured", cfg.Neighborhood, "used", config.ElementaryNeighborhood)
	}
	log.Info("run started",
		"rule", cfg.Rule, "states", cfg.States, "cells", cfg.Cells,
		"generations", total, "seeding", string(cfg.Seeding), "seed", cfg.Seed)

	produced := 0
	for produced < total {
		if produced > 0 {
			if opts.Workers > 1 {
				sim = sim.NextParallel(opts.Workers)
			} else {
				sim = sim.Next()
			}
		}
		if err := r.Render(sim.Generation(), sim.Current(), palette); err != nil {
			return Result{Final: sim, Generations: produced}, err
		}
		produced++
		log.Debug("generation rendered", "gen", sim.Generation(), "row", sim.Current())
	}

	log.Info("run finished", "generations", produced)
	return Result{Final: sim, Generations: produced}, nil
}

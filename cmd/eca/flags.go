package main

import (
	"fmt"

	"eca/internal/config"
	"eca/internal/rule"

	"github.com/spf13/pflag"
)

// automatonFlags holds the values of the flags shared by run and gui.
type automatonFlags struct {
	cfg config.Config
}

func (a *automatonFlags) bind(fs *pflag.FlagSet) {
	a.cfg = config.DefaultConfig()
	c := &a.cfg
	fs.IntVar(&c.Cells, "cells", c.Cells, "number of cells per generation")
	fs.Var(&c.Generations, "generations", `generations to run including generation 0, or "fit"; capped at --cells`)
	fs.Uint64Var(&c.Rule, "rule", c.Rule, "Wolfram rule number")
	fs.IntVar(&c.States, "states", c.States, "number of cell states")
	fs.StringVar((*string)(&c.RuleType), "rule-type", string(c.RuleType), "rule type (only wolfram is supported)")
	fs.IntVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "neighborhood size (ignored by wolfram rules)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random first generation")
	fs.StringVar((*string)(&c.Seeding), "seeding", string(c.Seeding), "first generation: random or center")
	fs.Float64Var(&c.SeedDensity, "seed-density", c.SeedDensity, "chance a random cell is non-zero (0 for uniform states)")
	fs.StringSliceVar(&c.Palette, "palette", c.Palette, "hex colors, one per state")
}

// overlay copies every flag the user set onto dst.
func (a *automatonFlags) overlay(fs *pflag.FlagSet, dst *config.Config) error {
	src := a.cfg
	var err error
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "cells":
			dst.Cells = src.Cells
		case "generations":
			dst.Generations = src.Generations
		case "rule":
			dst.Rule = src.Rule
		case "states":
			dst.States = src.States
		case "rule-type":
			t, perr := rule.ParseType(string(src.RuleType))
			if perr != nil {
				err = fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, perr)
				return
			}
			dst.RuleType = t
		case "neighborhood":
			dst.Neighborhood = src.Neighborhood
		case "seed":
			dst.Seed = src.Seed
		case "seeding":
			dst.Seeding = src.Seeding
		case "seed-density":
			dst.SeedDensity = src.SeedDensity
		case "palette":
			dst.Palette = src.Palette
		}
	})
	return err
}

// resolve layers defaults, the config file and explicitly set flags, then
// validates the result.
func (c *cli) resolve(fs *pflag.FlagSet, a *automatonFlags) (config.Config, error) {
	cfg := config.DefaultConfig()
	if c.configFile != "" {
		loaded, err := config.Load(c.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := a.overlay(fs, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

package main

import (
	"fmt"

	"eca/internal/render"
	"eca/internal/report"
	"eca/internal/sims/elementary"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type runFlags struct {
	automatonFlags
	initial string
	glyphs  []string
	workers int
	stats   bool
	quiet   bool
	noColor bool
}

func (c *cli) runCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the automaton and print one line per generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, f)
		},
	}
	f.bind(cmd.Flags())
	cmd.Flags().StringVar(&f.initial, "initial", "", "explicit first generation as digits, e.g. 01000")
	cmd.Flags().StringSliceVar(&f.glyphs, "glyphs", nil, "glyph per state (default a colored block, or the state digit without colors)")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "goroutines per step")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "plot live-cell density after the run")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "skip the diagnostics header")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colors")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, f *runFlags) error {
	logger, err := c.logger()
	if err != nil {
		return err
	}
	cfg, err := c.resolve(cmd.Flags(), &f.automatonFlags)
	if err != nil {
		return err
	}

	var sim elementary.Simulation
	if f.initial != "" {
		row, perr := elementary.ParseGeneration(f.initial)
		if perr != nil {
			return fmt.Errorf("--initial: %w", perr)
		}
		if !cmd.Flags().Changed("cells") {
			cfg.Cells = len(row)
		}
		sim, err = elementary.NewFromRow(cfg, row)
	} else {
		sim, err = elementary.New(cfg)
	}
	if err != nil {
		return err
	}
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}

	if !f.quiet {
		if err := report.Print(c.stderr, cfg, sim.Table(), sim.Current()); err != nil {
			return err
		}
	}

	var termOpts []render.TerminalOption
	if len(f.glyphs) > 0 {
		termOpts = append(termOpts, render.WithGlyphs(f.glyphs...))
	}
	if f.noColor {
		termOpts = append(termOpts, render.WithColorProfile(termenv.Ascii))
	}
	stats := render.NewStats()
	renderers := []render.Renderer{render.NewTerminal(c.stdout, termOpts...)}
	if f.stats {
		renderers = append(renderers, stats)
	}

	res, err := elementary.Run(sim, elementary.RunOptions{
		Renderer: render.Multi(renderers...),
		Palette:  palette,
		Logger:   logger,
		Workers:  f.workers,
	})
	if err != nil {
		return err
	}

	if f.stats {
		if plot := stats.Plot(fmt.Sprintf("rule %d live-cell density, %d generations", cfg.Rule, res.Generations)); plot != "" {
			fmt.Fprintln(c.stdout, plot)
		}
	}
	return nil
}

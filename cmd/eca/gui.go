package main

import (
	"eca/internal/app"

	"github.com/spf13/cobra"
)

func (c *cli) guiCmd() *cobra.Command {
	f := &automatonFlags{}
	var opts app.Options
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "play the automaton in a window (requires the ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd.Flags(), f)
			if err != nil {
				return err
			}
			return app.Run(cfg, opts)
		},
	}
	f.bind(cmd.Flags())
	cmd.Flags().StringVar(&opts.Sim, "sim", app.DefaultSim, "registered simulation to play (see eca list)")
	cmd.Flags().IntVar(&opts.Scale, "scale", 4, "pixel size of one cell")
	cmd.Flags().IntVar(&opts.Rate, "rate", 30, "generations per second")
	return cmd
}

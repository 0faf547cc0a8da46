package main

import (
	"fmt"

	"eca/internal/core"

	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the simulations the gui command can play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.Names() {
				if _, err := fmt.Fprintln(c.stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

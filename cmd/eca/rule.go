package main

import (
	"fmt"
	"strconv"

	"eca/internal/config"
	"eca/internal/report"
	"eca/internal/rule"

	"github.com/spf13/cobra"
)

func (c *cli) ruleCmd() *cobra.Command {
	states := config.DefaultStates
	cmd := &cobra.Command{
		Use:   "rule <number>",
		Short: "print the neighborhood table of a Wolfram rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("rule %q: not a non-negative integer", args[0])
			}
			table, err := rule.Build(id, states, config.ElementaryNeighborhood)
			if err != nil {
				return err
			}
			return report.PrintRule(c.stdout, table)
		},
	}
	cmd.Flags().IntVar(&states, "states", states, "number of cell states")
	return cmd
}

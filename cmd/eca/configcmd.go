package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"eca/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "eca.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	flags := &automatonFlags{}
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(c.stdout)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
	flags.bind(showCmd.Flags())

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

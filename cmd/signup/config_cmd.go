package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/signup/app"
	"github.com/jask/signup/internal/config"
)

func configCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(configInitCmd(opts))
	return cmd
}

func configInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration, including the full key table, to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(opts.configPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg, err := opts.readConfig()
			if err != nil {
				return err
			}
			cfg.Keys = app.KeyTable(cfg)
			path, err = config.Save(cfg, path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

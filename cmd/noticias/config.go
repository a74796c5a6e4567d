package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/henri123lemoine/noticias/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := targetConfigPath()
			if err := config.CreateDefaultConfigFile(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), targetConfigPath())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func targetConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}

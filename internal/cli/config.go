package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"runcalc/internal/config"
)

func init() {
	configCmd.AddCommand(configInitCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the runcalc config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateExample()
		if err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"gamehub/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gamehub config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.OutOrStdout(), config.NewConfigServiceAt(opts.configPath), force)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// initConfig saves DefaultConfig to the service's path. An existing file
// is only replaced with force.
func initConfig(out io.Writer, svc config.ConfigService, force bool) error {
	path := svc.Path()
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}
	log.Printf("Wrote default config to %s", path)
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

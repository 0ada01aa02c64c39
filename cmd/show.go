package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print the details of one game from the top rated catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}
			client, err := opts.client()
			if err != nil {
				return err
			}

			list, err := loadCatalog(cmd.Context(), client, opts.cfg.Catalog.BatchSize)
			if err != nil {
				return err
			}
			defer list.Close()

			d, ok := list.Find(id)
			if !ok {
				return fmt.Errorf("game %d is not in the top %d", id, opts.cfg.Catalog.BatchSize)
			}
			return writeDetail(cmd.OutOrStdout(), format, d)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format: text, yaml or json")

	return cmd
}

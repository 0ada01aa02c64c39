package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gamehub/internal/ui/viewmodels"
)

func newTopCmd(opts *rootOptions) *cobra.Command {
	var (
		page   int
		search string
		format string
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print one page of the top rated games",
		Example: `  gamehub top
  gamehub top --page 3
  gamehub top --search zelda --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
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

			snap := pageTo(list, search, page)
			return writePage(cmd.OutOrStdout(), format, snap.Games, snap.Page, snap.SearchTerm)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to print (10 games per page)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only games whose name contains this text")
	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "Output format: table, yaml or json")

	return cmd
}

// pageTo applies the search and steps forward to the requested page,
// stopping at the last one
func pageTo(list *viewmodels.ListViewModel, search string, page int) viewmodels.Snapshot {
	if search != "" {
		list.Search(search)
	}
	snap := list.Snapshot()
	for snap.Page.Page < page && snap.Page.NextEnabled {
		list.NextPage()
		snap = list.Snapshot()
	}
	if snap.Page.Page < page {
		log.Printf("Requested page %d, last page is %d", page, snap.Page.TotalPages)
	}
	return snap
}

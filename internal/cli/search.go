package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCommand(opts *RootOptions) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the book catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			query := strings.Join(args, " ")
			ctx := cmd.Context()

			if page > 1 {
				_, err = app.Store.LoadPage(ctx, query, page)
			} else {
				_, err = app.Store.Search(ctx, query)
			}

			snap := app.Store.Snapshot()
			if err != nil {
				// The store already converted the failure into its
				// Error field; render that, like the error banner.
				if snap.Catalog.Error != "" {
					return fmt.Errorf("%s", snap.Catalog.Error)
				}
				return err
			}

			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), snap.Catalog)
			}
			printResults(cmd.OutOrStdout(), snap.Catalog)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
	return cmd
}

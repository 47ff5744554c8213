package cli

import (
	"github.com/spf13/cobra"
)

func newBookCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "book <id>",
		Short: "Show details for a single book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			book, err := app.Books.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), book)
			}
			printBook(cmd.OutOrStdout(), book)
			if r, ok := app.Store.FindReviewByBook(book.ID); ok {
				printReview(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

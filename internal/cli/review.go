package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in: run `bookfinder login` first")

func newReviewCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage your book reviews",
	}

	cmd.AddCommand(newReviewAddCommand(opts))
	cmd.AddCommand(newReviewUpdateCommand(opts))
	cmd.AddCommand(newReviewRemoveCommand(opts))
	cmd.AddCommand(newReviewListCommand(opts))
	return cmd
}

func newReviewAddCommand(opts *RootOptions) *cobra.Command {
	var rating int
	var text string

	cmd := &cobra.Command{
		Use:   "add <book-id>",
		Short: "Add a review for a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			snap := app.Store.Snapshot()
			if !snap.Session.IsAuthenticated {
				return errNotLoggedIn
			}

			r, err := app.Store.AddReview(args[0], rating, text, snap.Session.User.Username)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "review %s added\n", r.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "star rating, 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "review text")
	_ = cmd.MarkFlagRequired("rating")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newReviewUpdateCommand(opts *RootOptions) *cobra.Command {
	var rating int
	var text string

	cmd := &cobra.Command{
		Use:   "update <review-id>",
		Short: "Edit an existing review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			r, err := app.Store.UpdateReview(args[0], rating, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "review %s updated\n", r.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "star rating, 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "review text")
	_ = cmd.MarkFlagRequired("rating")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newReviewRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <review-id>",
		Short: "Delete a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Store.RemoveReview(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "review removed")
			return nil
		},
	}
}

func newReviewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			reviews := app.Store.Snapshot().Reviews
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), reviews)
			}
			if len(reviews) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no reviews yet")
				return nil
			}
			for _, r := range reviews {
				printReview(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

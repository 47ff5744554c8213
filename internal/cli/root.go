// Package cli is the command-line front-end over the state store: the
// search grid, login page and review form of the original UI rendered
// as subcommands.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	DataDir string
	JSON    bool
}

// NewRootCommand creates the bookfinder root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "bookfinder",
		Short:         "Search the Google Books catalog and keep personal reviews",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "data directory (default $HOME/.bookfinder)")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "emit JSON instead of text")

	cmd.AddCommand(newSearchCommand(opts))
	cmd.AddCommand(newBookCommand(opts))
	cmd.AddCommand(newLoginCommand(opts))
	cmd.AddCommand(newLogoutCommand(opts))
	cmd.AddCommand(newWhoamiCommand(opts))
	cmd.AddCommand(newReviewCommand(opts))

	return cmd
}

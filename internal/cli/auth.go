package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(opts *RootOptions) *cobra.Command {
	var remember bool

	cmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and start a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			user, err := app.Store.Login(cmd.Context(), args[0], args[1], remember)
			if err != nil {
				return err
			}
			if !remember {
				fmt.Fprintln(cmd.OutOrStdout(), "note: session is not remembered; pass --remember to persist it")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", user.Username)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remember, "remember", false, "persist the session across runs")
	return cmd
}

func newLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Store.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			snap := app.Store.Snapshot()
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), snap.Session)
			}
			if !snap.Session.IsAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (remember me: %t)\n",
				snap.Session.User.Username, snap.Session.RememberMe)
			return nil
		},
	}
}

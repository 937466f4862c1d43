package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify the stored listener credentials against the service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var userID string

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				userID = session.Tokens().UserID
				return nil
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in (user id %s)\n", userID)
			return nil
		},
	}
}

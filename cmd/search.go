package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	stationsrender "github.com/tunerlab/pandora-cli/internal/adapters/render/stations"
	"github.com/tunerlab/pandora-cli/internal/application"
)

func newSearchCmd(app *app) *cobra.Command {
	var nearMatches bool

	cmd := &cobra.Command{
		Use:   "search <text>...",
		Short: "Search songs and artists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			var results application.SearchResponse

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Searching...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				results, err = session.Search(ctx, query, nearMatches)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), stationsrender.RenderSearch(query, results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&nearMatches, "near-matches", false, "Include near matches in the results")

	return cmd
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	stationsrender "github.com/tunerlab/pandora-cli/internal/adapters/render/stations"
	"github.com/tunerlab/pandora-cli/internal/application"
)

func newStationsCmd(app *app) *cobra.Command {
	var includeArt bool

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List the listener's stations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var list application.GetStationListResponse

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching stations...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				list, err = session.StationList(ctx, includeArt)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), stationsrender.RenderList(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArt, "art", false, "Include station art URLs")
	cmd.AddCommand(newStationsGenresCmd(app))

	return cmd
}

func newStationsGenresCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "Browse the genre station catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var catalog application.GetGenreStationsResponse

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching genre stations...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				catalog, err = session.GenreStations(ctx)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), stationsrender.RenderGenres(catalog))
			return nil
		},
	}
}

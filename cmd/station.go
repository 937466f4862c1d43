package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunerlab/pandora-cli/internal/application"
)

func newStationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "station",
		Short: "Create, rename, or delete a station",
	}

	cmd.AddCommand(
		newStationCreateCmd(app),
		newStationRenameCmd(app),
		newStationDeleteCmd(app),
		newStationFeedbackCmd(app),
	)

	return cmd
}

func newStationCreateCmd(app *app) *cobra.Command {
	var (
		musicToken string
		trackToken string
		musicType  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a station from a search music token or a playlist track token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if musicToken == "" && trackToken == "" {
				return fmt.Errorf("one of --music-token or --track-token is required")
			}
			if trackToken != "" && musicType == "" {
				return fmt.Errorf("--music-type (song or artist) is required with --track-token")
			}

			request := application.CreateStationRequest{
				MusicToken: musicToken,
				TrackToken: trackToken,
				MusicType:  musicType,
			}

			var station application.Station
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating station...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				station, err = session.CreateStation(ctx, request)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created station %q (token %s)\n", station.StationName, station.StationToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&musicToken, "music-token", "", "Music token from a search result")
	cmd.Flags().StringVar(&trackToken, "track-token", "", "Track token from a playlist item")
	cmd.Flags().StringVar(&musicType, "music-type", "", "Seed type when using --track-token: song or artist")

	return cmd
}

func newStationRenameCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <station-token>",
		Short: "Rename a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var station application.Station
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Renaming station...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				station, err = session.RenameStation(ctx, args[0], name)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed station to %q\n", station.StationName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New station name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStationDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <station-token>",
		Short: "Delete a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Deleting station...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				return session.DeleteStation(ctx, args[0])
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Deleted station")
			return nil
		},
	}
}

func newStationFeedbackCmd(app *app) *cobra.Command {
	var (
		trackToken string
		down       bool
	)

	cmd := &cobra.Command{
		Use:   "feedback <station-token>",
		Short: "Rate a track on a station (thumbs up by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var feedback application.AddFeedbackResponse
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Sending feedback...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				feedback, err = session.AddFeedback(ctx, args[0], trackToken, !down)
				return err
			})
			if err != nil {
				return err
			}

			rating := "+1"
			if !feedback.IsPositive {
				rating = "-1"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rated %q by %s: %s\n", feedback.SongName, feedback.ArtistName, rating)
			return nil
		},
	}

	cmd.Flags().StringVar(&trackToken, "track-token", "", "Track token from a playlist item")
	cmd.Flags().BoolVar(&down, "down", false, "Thumbs down instead of thumbs up")
	_ = cmd.MarkFlagRequired("track-token")

	return cmd
}

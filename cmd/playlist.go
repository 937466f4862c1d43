package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	stationsrender "github.com/tunerlab/pandora-cli/internal/adapters/render/stations"
	"github.com/tunerlab/pandora-cli/internal/application"
	"github.com/tunerlab/pandora-cli/internal/domain"
)

func newPlaylistCmd(app *app) *cobra.Command {
	var audioFormat string

	cmd := &cobra.Command{
		Use:   "playlist <station-token>",
		Short: "Fetch the next playlist fragment for a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stationToken := args[0]

			var options map[string]any
			if audioFormat != "" {
				format, err := domain.ParseAudioFormat(audioFormat)
				if err != nil {
					return err
				}
				options = map[string]any{"additionalAudioUrl": string(format)}
			}

			var playlist application.GetPlaylistResponse

			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching playlist...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				playlist, err = session.Playlist(ctx, stationToken, options)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), stationsrender.RenderPlaylist(stationToken, playlist))
			return nil
		},
	}

	cmd.Flags().StringVar(&audioFormat, "audio-format", "", "Request an additional audio URL in this format (e.g. HTTP_64_AACPLUS)")

	return cmd
}

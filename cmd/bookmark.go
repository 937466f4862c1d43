package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunerlab/pandora-cli/internal/application"
)

func newBookmarkCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Save song or artist bookmarks",
	}

	cmd.AddCommand(
		newBookmarkSongCmd(app),
		newBookmarkArtistCmd(app),
		newBookmarkListCmd(app),
	)

	return cmd
}

func newBookmarkSongCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "song <track-token>",
		Short: "Bookmark the song playing on a track token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bookmark application.SongBookmarkResponse
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Saving bookmark...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				bookmark, err = session.AddSongBookmark(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %q by %s\n", bookmark.SongName, bookmark.ArtistName)
			return nil
		},
	}
}

func newBookmarkArtistCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "artist <track-token>",
		Short: "Bookmark the artist playing on a track token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bookmark application.ArtistBookmarkResponse
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Saving bookmark...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				bookmark, err = session.AddArtistBookmark(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked artist %s\n", bookmark.ArtistName)
			return nil
		},
	}
}

func newBookmarkListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved bookmarks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var bookmarks application.GetBookmarksResponse
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching bookmarks...", func(ctx context.Context) error {
				session, _, err := app.authenticatedSession(ctx)
				if err != nil {
					return err
				}

				bookmarks, err = session.Bookmarks(ctx)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, artist := range bookmarks.Artists {
				_, _ = fmt.Fprintf(out, "artist\t%s\n", artist.ArtistName)
			}
			for _, song := range bookmarks.Songs {
				_, _ = fmt.Fprintf(out, "song\t%s by %s\n", song.SongName, song.ArtistName)
			}
			if len(bookmarks.Artists) == 0 && len(bookmarks.Songs) == 0 {
				_, _ = fmt.Fprintln(out, "No bookmarks saved.")
			}

			return nil
		},
	}
}

package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pandora",
		Short:         "Pandora CLI: browse stations, playlists, and search from the terminal",
		Long:          "pandora authenticates against the Pandora JSON API with a stored listener account and lets you list stations, fetch playlists, search music, manage stations, and save bookmarks.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newLoginCmd(app),
		newStationsCmd(app),
		newPlaylistCmd(app),
		newSearchCmd(app),
		newStationCmd(app),
		newBookmarkCmd(app),
	)

	return rootCmd
}

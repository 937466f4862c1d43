package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the stored listener account",
	}

	cmd.AddCommand(
		newAccountSetCmd(app),
		newAccountShowCmd(app),
		newAccountRemoveCmd(app),
	)

	return cmd
}

func newAccountSetCmd(app *app) *cobra.Command {
	var (
		username string
		password string
		device   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store listener credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deviceKind := domain.DeviceKind(device)
			if _, err := domain.ProfileFor(deviceKind); err != nil {
				return err
			}

			if err := app.secretStore.Put(cmd.Context(), listenerSecretKey, password); err != nil {
				return fmt.Errorf("store listener password: %w", err)
			}

			listener := domain.Listener{
				Username:  username,
				Device:    deviceKind,
				SecretRef: listenerSecretKey,
			}
			if err := app.listeners.Save(cmd.Context(), listener); err != nil {
				return fmt.Errorf("save listener account: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored listener %s (device %s)\n", username, device)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Listener username (email)")
	cmd.Flags().StringVar(&password, "password", "", "Listener password")
	cmd.Flags().StringVar(&device, "device", string(domain.DeviceAndroid), "Device persona to authenticate as")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAccountShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored listener account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			listener, err := app.listeners.Get(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "username: %s\ndevice: %s\n", listener.Username, listener.Device)
			return nil
		},
	}
}

func newAccountRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored listener account and its password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			listener, err := app.listeners.Get(cmd.Context())
			if err != nil {
				return err
			}

			secretRef := listener.SecretRef
			if secretRef == "" {
				secretRef = listenerSecretKey
			}
			if err := app.secretStore.Delete(cmd.Context(), secretRef); err != nil {
				return fmt.Errorf("delete listener password: %w", err)
			}

			if err := app.listeners.Delete(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed listener account")
			return nil
		},
	}
}

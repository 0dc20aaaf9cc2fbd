package cmd

import (
	"fmt"

	"github.com/avasile/resx-cli/internal/adapters/render/views"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Show and acknowledge notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireIdentity(cmd.Context(), app); err != nil {
				return err
			}

			notifications, err := app.notifications.List(cmd.Context())
			if err != nil {
				return err
			}

			out, err := views.RenderNotifications(notifications)
			if err != nil {
				return fmt.Errorf("render notifications: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(newNotificationsReadCmd(app))

	return cmd
}

func newNotificationsReadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireIdentity(cmd.Context(), app); err != nil {
				return err
			}

			if err := app.notifications.MarkRead(cmd.Context(), domain.NotificationID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as read.\n", args[0])
			return nil
		},
	}
}

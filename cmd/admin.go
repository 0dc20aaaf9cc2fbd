package cmd

import (
	"fmt"

	"github.com/avasile/resx-cli/internal/adapters/render/views"
	"github.com/avasile/resx-cli/internal/application"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer users and items",
	}

	users := &cobra.Command{
		Use:   "users",
		Short: "Manage registered users",
	}
	users.AddCommand(newAdminUsersListCmd(app), newAdminUsersDeleteCmd(app))

	items := &cobra.Command{
		Use:   "items",
		Short: "Manage all donation items",
	}
	items.AddCommand(newAdminItemsListCmd(app), newAdminItemsDeleteCmd(app))

	cmd.AddCommand(users, items)

	return cmd
}

func newAdminUsersListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenAdminHome); err != nil {
				return err
			}

			users, err := app.admin.Users(cmd.Context())
			if err != nil {
				return err
			}

			out, err := views.RenderUsers(users)
			if err != nil {
				return fmt.Errorf("render users: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAdminUsersDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenAdminHome); err != nil {
				return err
			}

			ok, err := confirm(cmd, yes, fmt.Sprintf("Delete user %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if err := app.admin.RemoveUser(cmd.Context(), domain.UserID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s.\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newAdminItemsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every donation item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenAdminHome); err != nil {
				return err
			}

			items, err := app.admin.Items(cmd.Context())
			if err != nil {
				return err
			}

			return printItems(cmd, items, "All Items", app.baseURL)
		},
	}
}

func newAdminItemsDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete any donation item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenAdminHome); err != nil {
				return err
			}

			ok, err := confirm(cmd, yes, fmt.Sprintf("Delete item %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if err := app.admin.RemoveItem(cmd.Context(), domain.ItemID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s.\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

package cmd

import (
	"context"
	"fmt"

	"github.com/avasile/resx-cli/internal/adapters/render/views"
	"github.com/avasile/resx-cli/internal/application"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newItemsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Browse and manage donation items",
	}

	cmd.AddCommand(
		newItemsListCmd(app),
		newItemsMineCmd(app),
		newItemsSearchCmd(app),
		newItemsAddCmd(app),
		newItemsDeleteCmd(app),
	)

	return cmd
}

func newItemsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Browse all donation items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenBrowseItems); err != nil {
				return err
			}

			var items []domain.Item
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching items...", func(ctx context.Context) error {
				var fetchErr error
				items, fetchErr = app.items.Browse(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			return printItems(cmd, items, "Donation Items", app.baseURL)
		},
	}
}

func newItemsMineCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own donation items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenDonorItems); err != nil {
				return err
			}

			items, err := app.items.Mine(cmd.Context())
			if err != nil {
				return err
			}

			return printItems(cmd, items, "My Items", app.baseURL)
		},
	}
}

func newItemsSearchCmd(app *app) *cobra.Command {
	var name, location string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search items by name and location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenSearchItems); err != nil {
				return err
			}

			items, err := app.items.Search(cmd.Context(), name, location)
			if err != nil {
				return err
			}

			return printItems(cmd, items, "Search Results", app.baseURL)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Match against item titles")
	cmd.Flags().StringVar(&location, "location", "", "Match against item locations")

	return cmd
}

func newItemsAddCmd(app *app) *cobra.Command {
	var title, description, location string
	var images []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Publish a new donation item with photos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenDonorAddItem); err != nil {
				return err
			}

			err := app.items.Publish(cmd.Context(), domain.ItemDraft{
				Title:       title,
				Description: description,
				Location:    location,
				ImagePaths:  images,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Published %q with %d image(s).\n", title, len(images))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	cmd.Flags().StringVar(&location, "location", "", "Pickup location")
	cmd.Flags().StringSliceVar(&images, "image", nil, fmt.Sprintf("Local image file, repeatable up to %d times", domain.MaxItemImages))
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newItemsDeleteCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete one of your donation items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenDonorItems); err != nil {
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

			if err := app.items.Remove(cmd.Context(), domain.ItemID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s.\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func printItems(cmd *cobra.Command, items []domain.Item, title, baseURL string) error {
	out, err := views.RenderItems(items, views.ItemOptions{Title: title, BaseURL: baseURL})
	if err != nil {
		return fmt.Errorf("render items: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

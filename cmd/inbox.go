package cmd

import (
	"context"
	"fmt"

	"github.com/avasile/resx-cli/internal/adapters/render/views"
	"github.com/avasile/resx-cli/internal/application"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newInboxCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "Show your conversations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireScreen(cmd, app, application.ScreenInbox); err != nil {
				return err
			}

			var summaries []domain.Message
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching conversations...", func(ctx context.Context) error {
				var fetchErr error
				summaries, fetchErr = app.inbox.Fetch(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			out, err := views.RenderInbox(summaries)
			if err != nil {
				return fmt.Errorf("render inbox: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	chatview "github.com/avasile/resx-cli/internal/adapters/render/chat"
	"github.com/avasile/resx-cli/internal/application"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var to, item, conversation, message, peerName string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with another user about an item",
		Long:  "Opens a conversation about a donation item. Without --message the chat is interactive and stays live over the realtime channel; with --message it sends once and exits.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := requireScreen(cmd, app, application.ScreenChat)
			if err != nil {
				return err
			}

			if conversation == "" {
				conversation = uuid.NewString()
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "starting conversation %s\n", conversation)
			}

			// One-shot sends skip the realtime dial; there is nothing to
			// listen for.
			var dialer ports.RealtimeDialer
			if message == "" {
				dialer = app.dialer
			}

			session := application.NewChatSession(
				app.messages,
				dialer,
				identity,
				domain.ConversationID(conversation),
				domain.UserID(to),
				domain.ItemID(item),
			)
			if err := session.Open(cmd.Context()); err != nil {
				return err
			}
			defer func() { _ = session.Close() }()

			if message != "" {
				if _, err := session.Send(cmd.Context(), message); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent to conversation %s.\n", conversation)
				return nil
			}

			peer := peerName
			if peer == "" {
				peer = to
			}

			return chatview.Run(cmd.Context(), session, identity.ID, peer)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "User ID of the other participant")
	cmd.Flags().StringVar(&item, "item", "", "Item ID the conversation is about")
	cmd.Flags().StringVar(&conversation, "conversation", "", "Conversation ID (empty starts a new one)")
	cmd.Flags().StringVar(&message, "message", "", "Send this message and exit instead of opening the chat")
	cmd.Flags().StringVar(&peerName, "peer-name", "", "Display name for the other participant")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

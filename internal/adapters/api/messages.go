package api

import (
	"context"
	"net/http"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

var _ ports.MessageAPI = MessageClient{}

// MessageClient adapts Client to ports.MessageAPI. A separate type is needed
// because ports.ItemAPI and ports.MessageAPI both declare Delete with
// different ID types, which one receiver type cannot satisfy at once.
type MessageClient struct {
	*Client
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	ReceiverID     string `json:"receiverId"`
	ItemID         string `json:"itemId"`
	Text           string `json:"text"`
}

func (c *Client) List(ctx context.Context) ([]domain.Message, error) {
	var wires []messageWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/messages", nil, nil, &wires); err != nil {
		return nil, err
	}
	return toMessages(wires), nil
}

func (c *Client) Conversation(ctx context.Context, id domain.ConversationID) ([]domain.Message, error) {
	var wires []messageWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/messages/"+string(id), nil, nil, &wires); err != nil {
		return nil, err
	}
	return toMessages(wires), nil
}

func (c *Client) Send(ctx context.Context, draft domain.MessageDraft) (domain.Message, error) {
	var wire messageWire
	err := c.doJSON(ctx, http.MethodPost, "/api/messages", nil, sendMessageRequest{
		ConversationID: string(draft.ConversationID),
		SenderID:       string(draft.SenderID),
		ReceiverID:     string(draft.ReceiverID),
		ItemID:         string(draft.ItemID),
		Text:           draft.Text,
	}, &wire)
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(wire), nil
}

func (c MessageClient) Delete(ctx context.Context, id domain.MessageID) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/messages/"+string(id), nil, nil, nil)
}

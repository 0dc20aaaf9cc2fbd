package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

// ChatSession is one open conversation view. It owns at most one realtime
// connection, registered against the current identity, and releases it on
// Close regardless of how the view exits. Incoming messages for other
// conversations are dropped; duplicates (send response plus realtime echo)
// are suppressed by message ID.
type ChatSession struct {
	api            ports.MessageAPI
	dialer         ports.RealtimeDialer
	identity       domain.Identity
	conversationID domain.ConversationID
	receiverID     domain.UserID
	itemID         domain.ItemID

	mu       sync.Mutex
	messages []domain.Message
	conn     ports.RealtimeConn
}

func NewChatSession(api ports.MessageAPI, dialer ports.RealtimeDialer, identity domain.Identity, conversationID domain.ConversationID, receiverID domain.UserID, itemID domain.ItemID) *ChatSession {
	return &ChatSession{
		api:            api,
		dialer:         dialer,
		identity:       identity,
		conversationID: conversationID,
		receiverID:     receiverID,
		itemID:         itemID,
	}
}

// Open loads the conversation history and, when a dialer is configured,
// establishes the realtime channel.
func (c *ChatSession) Open(ctx context.Context) error {
	history, err := c.api.Conversation(ctx, c.conversationID)
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}

	c.mu.Lock()
	c.messages = history
	c.mu.Unlock()

	if c.dialer == nil {
		return nil
	}

	conn, err := c.dialer.Dial(ctx, c.identity.ID)
	if err != nil {
		return fmt.Errorf("open realtime channel: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	return nil
}

// Send posts the message over HTTP, appends the response to the local view,
// and echoes it on the realtime channel so the receiver sees it live. Blank
// text fails with domain.ErrValidation before any network call.
func (c *ChatSession) Send(ctx context.Context, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, domain.ErrValidation
	}

	sent, err := c.api.Send(ctx, domain.MessageDraft{
		ConversationID: c.conversationID,
		SenderID:       c.identity.ID,
		ReceiverID:     c.receiverID,
		ItemID:         c.itemID,
		Text:           text,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("send message: %w", err)
	}

	c.mu.Lock()
	c.messages = domain.AppendMessage(c.messages, sent)
	conn := c.conn
	c.mu.Unlock()

	if conn != nil {
		if err := conn.Send(ctx, sent); err != nil {
			return sent, fmt.Errorf("echo message on realtime channel: %w", err)
		}
	}

	return sent, nil
}

// Receive waits for the next realtime message that belongs to this
// conversation. Messages for other conversations are ignored; duplicates
// report ok=false so callers can skip a re-render.
func (c *ChatSession) Receive(ctx context.Context) (domain.Message, bool, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return domain.Message{}, false, domain.ErrNoSession
	}

	for {
		msg, err := conn.Recv(ctx)
		if err != nil {
			return domain.Message{}, false, err
		}
		if msg.ConversationID != c.conversationID {
			continue
		}

		c.mu.Lock()
		before := len(c.messages)
		c.messages = domain.AppendMessage(c.messages, msg)
		appended := len(c.messages) > before
		c.mu.Unlock()

		return msg, appended, nil
	}
}

func (c *ChatSession) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *ChatSession) DeleteMessage(ctx context.Context, id domain.MessageID) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	c.mu.Lock()
	kept := c.messages[:0]
	for _, msg := range c.messages {
		if msg.ID != id {
			kept = append(kept, msg)
		}
	}
	c.messages = kept
	c.mu.Unlock()

	return nil
}

// Close releases the realtime connection. Safe to call on every exit path,
// including when Open never dialed.
func (c *ChatSession) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

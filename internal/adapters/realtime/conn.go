package realtime

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
	"github.com/gorilla/websocket"
)

const (
	eventRegister    = "register"
	eventSendMessage = "sendMessage"
	eventNewMessage  = "newMessage"

	writeTimeout = 10 * time.Second
)

type envelope struct {
	Event string         `json:"event"`
	Data  messagePayload `json:"data"`
}

type registerEnvelope struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

type messagePayload struct {
	ID             string `json:"_id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	ReceiverID     string `json:"receiverId"`
	ItemID         string `json:"itemId"`
	Text           string `json:"text"`
	CreatedAt      string `json:"createdAt"`
}

func toPayload(msg domain.Message) messagePayload {
	created := ""
	if !msg.CreatedAt.IsZero() {
		created = msg.CreatedAt.Format(time.RFC3339Nano)
	}

	return messagePayload{
		ID:             string(msg.ID),
		ConversationID: string(msg.ConversationID),
		SenderID:       string(msg.SenderID),
		SenderName:     msg.SenderName,
		ReceiverID:     string(msg.ReceiverID),
		ItemID:         string(msg.ItemID),
		Text:           msg.Text,
		CreatedAt:      created,
	}
}

func fromPayload(p messagePayload) domain.Message {
	created := time.Time{}
	if p.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, p.CreatedAt); err == nil {
			created = ts
		}
	}

	return domain.Message{
		ID:             domain.MessageID(p.ID),
		ConversationID: domain.ConversationID(p.ConversationID),
		SenderID:       domain.UserID(p.SenderID),
		SenderName:     p.SenderName,
		ReceiverID:     domain.UserID(p.ReceiverID),
		ItemID:         domain.ItemID(p.ItemID),
		Text:           p.Text,
		CreatedAt:      created,
	}
}

// Dialer opens one websocket per chat view against the backend's realtime
// endpoint and registers the user on connect.
type Dialer struct {
	endpoint string
	ws       *websocket.Dialer
}

var _ ports.RealtimeDialer = (*Dialer)(nil)

// NewDialer derives the websocket endpoint from the API base URL.
func NewDialer(baseURL string, ws *websocket.Dialer) *Dialer {
	if ws == nil {
		ws = websocket.DefaultDialer
	}

	endpoint := strings.TrimRight(baseURL, "/")
	endpoint = strings.Replace(endpoint, "https://", "wss://", 1)
	endpoint = strings.Replace(endpoint, "http://", "ws://", 1)

	return &Dialer{endpoint: endpoint + "/ws", ws: ws}
}

func (d *Dialer) Dial(ctx context.Context, userID domain.UserID) (ports.RealtimeConn, error) {
	ws, _, err := d.ws.DialContext(ctx, d.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial realtime endpoint: %w", err)
	}

	conn := &Conn{ws: ws}
	if err := conn.register(userID); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

// Conn is one live chat channel. Writes are serialized; Close is safe to
// call from any exit path, any number of times.
type Conn struct {
	ws        *websocket.Conn
	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

var _ ports.RealtimeConn = (*Conn)(nil)

func (c *Conn) register(userID domain.UserID) error {
	if err := c.writeJSON(registerEnvelope{Event: eventRegister, Data: string(userID)}); err != nil {
		return fmt.Errorf("register realtime user: %w", err)
	}
	return nil
}

func (c *Conn) Send(_ context.Context, msg domain.Message) error {
	if err := c.writeJSON(envelope{Event: eventSendMessage, Data: toPayload(msg)}); err != nil {
		return fmt.Errorf("send realtime message: %w", err)
	}
	return nil
}

// Recv blocks until the server pushes the next newMessage event. Frames
// with any other event name are skipped.
func (c *Conn) Recv(ctx context.Context) (domain.Message, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.ws.SetReadDeadline(deadline)
	} else {
		_ = c.ws.SetReadDeadline(time.Time{})
	}

	for {
		if err := ctx.Err(); err != nil {
			return domain.Message{}, err
		}

		var env envelope
		if err := c.ws.ReadJSON(&env); err != nil {
			return domain.Message{}, fmt.Errorf("read realtime message: %w", err)
		}
		if env.Event != eventNewMessage {
			continue
		}

		return fromPayload(env.Data), nil
	}
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeTimeout))
		c.writeMu.Unlock()

		c.closeErr = c.ws.Close()
	})
	return c.closeErr
}

func (c *Conn) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteJSON(v)
}

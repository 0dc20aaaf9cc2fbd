package domain

import (
	"sort"
	"time"
)

type MessageID string

type ConversationID string

// Message is one entry in a donor-recipient thread about one item.
// Messages are immutable once created; deletion is a hard remove.
type Message struct {
	ID             MessageID
	ConversationID ConversationID
	SenderID       UserID
	SenderName     string
	ReceiverID     UserID
	ItemID         ItemID
	Text           string
	CreatedAt      time.Time
}

// MessageDraft is an outgoing message before the backend assigns its ID and
// timestamp.
type MessageDraft struct {
	ConversationID ConversationID
	SenderID       UserID
	ReceiverID     UserID
	ItemID         ItemID
	Text           string
}

// AggregateConversations reduces an unordered message list to one entry per
// conversation: the most recent message of each thread, sorted most recent
// first. Ties on equal timestamps keep the first-seen message, so the result
// is deterministic for a given input order. A zero CreatedAt (for example a
// timestamp the backend sent in a shape we could not parse) sorts last.
// The function is pure and idempotent: aggregating its own output returns
// the same summaries.
func AggregateConversations(messages []Message) []Message {
	latest := make(map[ConversationID]Message, len(messages))
	order := make([]ConversationID, 0, len(messages))

	for _, msg := range messages {
		current, ok := latest[msg.ConversationID]
		if !ok {
			latest[msg.ConversationID] = msg
			order = append(order, msg.ConversationID)
			continue
		}
		if msg.CreatedAt.After(current.CreatedAt) {
			latest[msg.ConversationID] = msg
		}
	}

	summaries := make([]Message, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, latest[id])
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries
}

// AppendMessage appends msg unless a message with the same ID is already
// present. A sent message typically arrives twice, once in the send response
// and once as the realtime echo.
func AppendMessage(messages []Message, msg Message) []Message {
	for _, existing := range messages {
		if existing.ID == msg.ID {
			return messages
		}
	}
	return append(messages, msg)
}

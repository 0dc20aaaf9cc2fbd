package api

import (
	"time"

	"github.com/avasile/resx-cli/internal/domain"
)

// Wire shapes follow the backend's Mongo-style field names. Timestamps come
// back as RFC 3339 strings; one the client cannot parse maps to the zero
// time, which the inbox treats as oldest.

type userWire struct {
	ID       string `json:"_id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type messageWire struct {
	ID             string `json:"_id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	ReceiverID     string `json:"receiverId"`
	ItemID         string `json:"itemId"`
	Text           string `json:"text"`
	CreatedAt      string `json:"createdAt"`
}

type itemWire struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
	DonorID     string   `json:"donorId"`
	DonorName   string   `json:"donorName"`
}

type notificationWire struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func toUser(w userWire) domain.User {
	return domain.User{
		ID:       domain.UserID(w.ID),
		FullName: w.FullName,
		Email:    w.Email,
		Role:     domain.Role(w.Role),
	}
}

func toMessage(w messageWire) domain.Message {
	return domain.Message{
		ID:             domain.MessageID(w.ID),
		ConversationID: domain.ConversationID(w.ConversationID),
		SenderID:       domain.UserID(w.SenderID),
		SenderName:     w.SenderName,
		ReceiverID:     domain.UserID(w.ReceiverID),
		ItemID:         domain.ItemID(w.ItemID),
		Text:           w.Text,
		CreatedAt:      parseTimestamp(w.CreatedAt),
	}
}

func toMessages(wires []messageWire) []domain.Message {
	messages := make([]domain.Message, 0, len(wires))
	for _, w := range wires {
		messages = append(messages, toMessage(w))
	}
	return messages
}

func toItem(w itemWire) domain.Item {
	return domain.Item{
		ID:          domain.ItemID(w.ID),
		Title:       w.Title,
		Description: w.Description,
		Location:    w.Location,
		Images:      w.Images,
		DonorID:     domain.UserID(w.DonorID),
		DonorName:   w.DonorName,
	}
}

func toItems(wires []itemWire) []domain.Item {
	items := make([]domain.Item, 0, len(wires))
	for _, w := range wires {
		items = append(items, toItem(w))
	}
	return items
}

func toNotification(w notificationWire) domain.Notification {
	return domain.Notification{
		ID:        domain.NotificationID(w.ID),
		UserID:    domain.UserID(w.UserID),
		Text:      w.Text,
		Read:      w.IsRead,
		CreatedAt: parseTimestamp(w.CreatedAt),
	}
}

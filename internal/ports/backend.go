package ports

import (
	"context"

	"github.com/avasile/resx-cli/internal/domain"
)

type Registration struct {
	FullName string
	Email    string
	Password string
	Role     domain.Role
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Register(ctx context.Context, reg Registration) error
}

type ItemAPI interface {
	All(ctx context.Context) ([]domain.Item, error)
	Mine(ctx context.Context) ([]domain.Item, error)
	Filter(ctx context.Context, name, location string) ([]domain.Item, error)
	Add(ctx context.Context, draft domain.ItemDraft) error
	Delete(ctx context.Context, id domain.ItemID) error
}

type MessageAPI interface {
	List(ctx context.Context) ([]domain.Message, error)
	Conversation(ctx context.Context, id domain.ConversationID) ([]domain.Message, error)
	Send(ctx context.Context, draft domain.MessageDraft) (domain.Message, error)
	Delete(ctx context.Context, id domain.MessageID) error
}

type NotificationAPI interface {
	Notifications(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id domain.NotificationID) error
}

type AdminAPI interface {
	Users(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserID) error
	AdminItems(ctx context.Context) ([]domain.Item, error)
	DeleteAnyItem(ctx context.Context, id domain.ItemID) error
}

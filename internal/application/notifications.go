package application

import (
	"context"
	"fmt"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

type NotificationService struct {
	api ports.NotificationAPI
}

func NewNotificationService(api ports.NotificationAPI) *NotificationService {
	return &NotificationService{api: api}
}

func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	notifications, err := s.api.Notifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id domain.NotificationID) error {
	if err := s.api.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

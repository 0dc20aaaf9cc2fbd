package api

import (
	"context"
	"net/http"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

var _ ports.NotificationAPI = (*Client)(nil)

func (c *Client) Notifications(ctx context.Context) ([]domain.Notification, error) {
	var wires []notificationWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/notifications", nil, nil, &wires); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(wires))
	for _, w := range wires {
		notifications = append(notifications, toNotification(w))
	}
	return notifications, nil
}

func (c *Client) MarkRead(ctx context.Context, id domain.NotificationID) error {
	return c.doJSON(ctx, http.MethodPatch, "/api/notifications/"+string(id)+"/read", nil, struct{}{}, nil)
}

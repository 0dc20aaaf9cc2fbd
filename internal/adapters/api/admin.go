package api

import (
	"context"
	"net/http"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

var _ ports.AdminAPI = (*Client)(nil)

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var wires []userWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, nil, &wires); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		users = append(users, toUser(w))
	}
	return users, nil
}

func (c *Client) DeleteUser(ctx context.Context, id domain.UserID) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/users/"+string(id), nil, nil, nil)
}

func (c *Client) AdminItems(ctx context.Context) ([]domain.Item, error) {
	var wires []itemWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/items", nil, nil, &wires); err != nil {
		return nil, err
	}
	return toItems(wires), nil
}

func (c *Client) DeleteAnyItem(ctx context.Context, id domain.ItemID) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/items/"+string(id), nil, nil, nil)
}

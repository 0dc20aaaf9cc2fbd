package application

import (
	"context"
	"fmt"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

type AdminService struct {
	api ports.AdminAPI
}

func NewAdminService(api ports.AdminAPI) *AdminService {
	return &AdminService{api: api}
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.api.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return users, nil
}

func (s *AdminService) RemoveUser(ctx context.Context, id domain.UserID) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *AdminService) Items(ctx context.Context) ([]domain.Item, error) {
	items, err := s.api.AdminItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	return items, nil
}

func (s *AdminService) RemoveItem(ctx context.Context, id domain.ItemID) error {
	if err := s.api.DeleteAnyItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

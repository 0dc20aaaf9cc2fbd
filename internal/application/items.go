package application

import (
	"context"
	"fmt"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

type ItemService struct {
	api ports.ItemAPI
}

func NewItemService(api ports.ItemAPI) *ItemService {
	return &ItemService{api: api}
}

func (s *ItemService) Browse(ctx context.Context) ([]domain.Item, error) {
	items, err := s.api.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Mine(ctx context.Context) ([]domain.Item, error) {
	items, err := s.api.Mine(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch own items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Search(ctx context.Context, name, location string) ([]domain.Item, error) {
	items, err := s.api.Filter(ctx, name, location)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// Publish validates the draft locally before any network call, then uploads
// it with its images.
func (s *ItemService) Publish(ctx context.Context, draft domain.ItemDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := s.api.Add(ctx, draft); err != nil {
		return fmt.Errorf("upload item: %w", err)
	}

	return nil
}

func (s *ItemService) Remove(ctx context.Context, id domain.ItemID) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

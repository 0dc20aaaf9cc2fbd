package application

import (
	"context"
	"fmt"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

type InboxService struct {
	api ports.MessageAPI
}

func NewInboxService(api ports.MessageAPI) *InboxService {
	return &InboxService{api: api}
}

// Fetch pulls every message the user can see and reduces the list to one
// summary per conversation, newest first. The reduction is re-run in full on
// every fetch; there is no incremental path.
func (s *InboxService) Fetch(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch inbox: %w", err)
	}

	return domain.AggregateConversations(messages), nil
}

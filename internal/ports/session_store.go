package ports

import (
	"context"

	"github.com/avasile/resx-cli/internal/domain"
)

// SessionStore persists the identity between CLI invocations. Load returns
// domain.ErrNoSession when nothing is cached; Clear is a no-op in that case.
type SessionStore interface {
	Load(ctx context.Context) (domain.Identity, error)
	Save(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}

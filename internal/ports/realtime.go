package ports

import (
	"context"

	"github.com/avasile/resx-cli/internal/domain"
)

// RealtimeConn is one live chat channel. The connection registers the user
// on dial; Recv blocks until the server pushes a message, the context ends,
// or the connection closes. Close is safe to call more than once.
type RealtimeConn interface {
	Send(ctx context.Context, msg domain.Message) error
	Recv(ctx context.Context) (domain.Message, error)
	Close() error
}

type RealtimeDialer interface {
	Dial(ctx context.Context, userID domain.UserID) (RealtimeConn, error)
}

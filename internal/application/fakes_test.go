package application

import (
	"context"
	"sync"
	"time"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	identity domain.Identity
	saved    int
	cleared  int
	saveErr  error
}

func (f *fakeSessionStore) Load(context.Context) (domain.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.identity.Authenticated() {
		return domain.Identity{}, domain.ErrNoSession
	}
	return f.identity, nil
}

func (f *fakeSessionStore) Save(_ context.Context, identity domain.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.identity = identity
	f.saved++
	return nil
}

func (f *fakeSessionStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.identity = domain.Identity{}
	f.cleared++
	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type fakeAuthAPI struct {
	identity    domain.Identity
	loginErr    error
	registerErr error
	registered  []ports.Registration
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (domain.Identity, error) {
	if f.loginErr != nil {
		return domain.Identity{}, f.loginErr
	}
	return f.identity, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, reg ports.Registration) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = append(f.registered, reg)
	return nil
}

type fakeMessageAPI struct {
	messages []domain.Message
	history  []domain.Message
	sent     []domain.MessageDraft
	sendResp domain.Message
	deleted  []domain.MessageID
	err      error
}

func (f *fakeMessageAPI) List(context.Context) ([]domain.Message, error) {
	return f.messages, f.err
}

func (f *fakeMessageAPI) Conversation(context.Context, domain.ConversationID) ([]domain.Message, error) {
	return f.history, f.err
}

func (f *fakeMessageAPI) Send(_ context.Context, draft domain.MessageDraft) (domain.Message, error) {
	if f.err != nil {
		return domain.Message{}, f.err
	}
	f.sent = append(f.sent, draft)
	return f.sendResp, nil
}

func (f *fakeMessageAPI) Delete(_ context.Context, id domain.MessageID) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeRealtimeConn struct {
	incoming chan domain.Message
	sent     []domain.Message
	closed   int
	mu       sync.Mutex
}

func newFakeRealtimeConn() *fakeRealtimeConn {
	return &fakeRealtimeConn{incoming: make(chan domain.Message, 8)}
}

func (f *fakeRealtimeConn) Send(_ context.Context, msg domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeRealtimeConn) Recv(ctx context.Context) (domain.Message, error) {
	select {
	case msg := <-f.incoming:
		return msg, nil
	case <-ctx.Done():
		return domain.Message{}, ctx.Err()
	}
}

func (f *fakeRealtimeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

type fakeDialer struct {
	conn    *fakeRealtimeConn
	dialed  []domain.UserID
	dialErr error
}

func (f *fakeDialer) Dial(_ context.Context, userID domain.UserID) (ports.RealtimeConn, error) {
	if f.dialErr != nil {
		return nil, f.dialErr
	}
	f.dialed = append(f.dialed, userID)
	return f.conn, nil
}

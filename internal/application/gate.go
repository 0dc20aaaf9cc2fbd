package application

import (
	"context"
	"time"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

type GateState int

const (
	GateLoading GateState = iota
	GateUnauthenticated
	GateAuthenticated
)

func (s GateState) String() string {
	switch s {
	case GateLoading:
		return "loading"
	case GateUnauthenticated:
		return "unauthenticated"
	case GateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// DefaultBootstrapDelay gives any asynchronous session restore time to
// settle before the first routing decision.
const DefaultBootstrapDelay = 500 * time.Millisecond

// Gate decides the render mode at startup. It reports GateLoading until the
// bootstrap delay has elapsed, no matter what the session does in the
// meantime, then exactly one of the two terminal states. Loading is never
// re-entered within one process.
type Gate struct {
	session   *SessionService
	clock     ports.Clock
	delay     time.Duration
	startedAt time.Time
}

func NewGate(session *SessionService, clock ports.Clock, delay time.Duration) *Gate {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if delay <= 0 {
		delay = DefaultBootstrapDelay
	}

	return &Gate{
		session:   session,
		clock:     clock,
		delay:     delay,
		startedAt: clock.Now(),
	}
}

func (g *Gate) State() (GateState, domain.Identity) {
	if g.clock.Now().Sub(g.startedAt) < g.delay {
		return GateLoading, domain.Identity{}
	}

	identity, ok := g.session.Current()
	if !ok {
		return GateUnauthenticated, domain.Identity{}
	}

	return GateAuthenticated, identity
}

// Wait blocks until the bootstrap delay has elapsed or the context ends, so
// callers can resolve the terminal state immediately afterwards.
func (g *Gate) Wait(ctx context.Context) error {
	remaining := g.delay - g.clock.Now().Sub(g.startedAt)
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

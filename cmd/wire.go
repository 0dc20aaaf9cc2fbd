package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	apiclient "github.com/avasile/resx-cli/internal/adapters/api"
	"github.com/avasile/resx-cli/internal/adapters/realtime"
	sessionstore "github.com/avasile/resx-cli/internal/adapters/session"
	"github.com/avasile/resx-cli/internal/application"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	session       *application.SessionService
	gate          *application.Gate
	auth          *application.AuthService
	items         *application.ItemService
	inbox         *application.InboxService
	notifications *application.NotificationService
	admin         *application.AdminService
	messages      ports.MessageAPI
	dialer        ports.RealtimeDialer
	baseURL       string
}

func wireApp() (*app, error) {
	store, err := sessionstore.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	session := application.NewSessionService(store)
	baseURL := envOrDefault("RESX_API_URL", "http://localhost:3000")

	client := apiclient.NewClient(baseURL, http.DefaultClient, func() string {
		identity, _ := session.Current()
		return identity.Token
	})

	return &app{
		session:       session,
		gate:          application.NewGate(session, ports.SystemClock{}, bootstrapDelay()),
		auth:          application.NewAuthService(client, session),
		items:         application.NewItemService(client),
		inbox:         application.NewInboxService(apiclient.MessageClient{Client: client}),
		notifications: application.NewNotificationService(client),
		admin:         application.NewAdminService(client),
		messages:      apiclient.MessageClient{Client: client},
		dialer:        realtime.NewDialer(baseURL, nil),
		baseURL:       baseURL,
	}, nil
}

func bootstrapDelay() time.Duration {
	if raw := os.Getenv("RESX_BOOTSTRAP_DELAY"); raw != "" {
		if delay, err := time.ParseDuration(raw); err == nil {
			return delay
		}
	}
	return application.DefaultBootstrapDelay
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// requireIdentity restores the cached session, waits out the auth gate, and
// returns the authenticated identity or an error telling the user to log in.
func requireIdentity(ctx context.Context, app *app) (domain.Identity, error) {
	if err := app.session.Restore(ctx); err != nil {
		return domain.Identity{}, err
	}
	if err := app.gate.Wait(ctx); err != nil {
		return domain.Identity{}, err
	}

	state, identity := app.gate.State()
	if state != application.GateAuthenticated {
		return domain.Identity{}, fmt.Errorf("%w: run `resx login` first", domain.ErrUnauthorized)
	}

	return identity, nil
}

// requireScreen additionally checks that the identity's navigation graph
// reaches the given screen. Roles the client does not recognize fall back to
// the recipient graph with a warning.
func requireScreen(cmd *cobra.Command, app *app, screen application.Screen) (domain.Identity, error) {
	identity, err := requireIdentity(cmd.Context(), app)
	if err != nil {
		return domain.Identity{}, err
	}

	graph, fallback := application.ResolveGraph(identity)
	if fallback {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: unrecognized role %q, using recipient screens\n", identity.Role)
	}
	if !graph.Contains(screen) {
		return domain.Identity{}, fmt.Errorf("%w: your role (%s) cannot open this screen", domain.ErrForbidden, graph.Role)
	}

	return identity, nil
}

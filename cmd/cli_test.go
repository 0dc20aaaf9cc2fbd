package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequiresFlags(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "login", "--email", "ana@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"password\" not set")
}

func TestLoginCachesSessionForWhoami(t *testing.T) {
	server := loginServer(t, "donor")
	defer server.Close()

	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as Ana Vasile (donor)")

	stdout, _, err = executeCLI(t, home, server.URL, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ana Vasile <ana@example.com>")
	assert.Contains(t, stdout, "role: donor")
	assert.Contains(t, stdout, "start screen: donor-home")
}

func TestLoginRejectedLeavesSessionAnonymous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"message":"wrong password"}`)
	}))
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "nope")
	require.Error(t, err)

	_, _, err = executeCLI(t, home, server.URL, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `resx login` first")
}

func TestWhoamiWithoutSessionFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `resx login` first")
}

func TestLogoutWithoutSessionIsNoOp(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out.")
}

func TestLogoutDropsCachedSession(t *testing.T) {
	server := loginServer(t, "recipient")
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL, "logout")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL, "whoami")
	require.Error(t, err)
}

func TestItemsListRendersItemsWithBearerToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", loginHandler("recipient"))
	mux.HandleFunc("/api/items/all", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `[{"_id":"item-1","title":"Oak Desk","description":"Sturdy","location":"Cluj","images":["uploads\\desk.jpg"],"donorName":"Ion"}]`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "items", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Oak Desk")
	assert.Contains(t, stdout, server.URL+"/uploads/desk.jpg")
}

func TestItemsAddForbiddenForRecipient(t *testing.T) {
	server := loginServer(t, "recipient")
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL,
		"items", "add",
		"--title", "Desk",
		"--description", "Sturdy",
		"--location", "Cluj",
		"--image", "desk.jpg",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open this screen")
}

func TestItemsListForbiddenForDonor(t *testing.T) {
	server := loginServer(t, "donor")
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL, "items", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open this screen")
}

func TestUnknownRoleWarnsAndUsesRecipientScreens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", loginHandler("moderator"))
	mux.HandleFunc("/api/items/all", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `[]`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	home := t.TempDir()

	_, stderr, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, stderr, `unrecognized role "moderator"`)

	stdout, stderr, err := executeCLI(t, home, server.URL, "items", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, `unrecognized role "moderator"`)
	assert.Contains(t, stdout, "No items found.")
}

func TestInboxShowsOneSummaryPerConversation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", loginHandler("recipient"))
	mux.HandleFunc("/api/messages", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `[
			{"_id":"m1","conversationId":"conv-a","senderName":"Ion","text":"older","createdAt":"2026-08-01T10:00:00Z"},
			{"_id":"m2","conversationId":"conv-a","senderName":"Ion","text":"latest in a","createdAt":"2026-08-02T10:00:00Z"},
			{"_id":"m3","conversationId":"conv-b","senderName":"Maria","text":"only in b","createdAt":"2026-08-01T12:00:00Z"}
		]`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "inbox")
	require.NoError(t, err)
	assert.Contains(t, stdout, "conversations: 2")
	assert.Contains(t, stdout, "latest in a")
	assert.Contains(t, stdout, "only in b")
	assert.NotContains(t, stdout, "older")
	assert.Less(t, strings.Index(stdout, "latest in a"), strings.Index(stdout, "only in b"))
}

func TestChatOneShotSendsMessage(t *testing.T) {
	var sent map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", loginHandler("recipient"))
	mux.HandleFunc("/api/messages/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `[]`)
	})
	mux.HandleFunc("/api/messages", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		_, _ = fmt.Fprintf(w, `{"_id":"m-new","conversationId":"%s","senderId":"user-1","text":"%s"}`, sent["conversationId"], sent["text"])
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL,
		"chat",
		"--to", "user-2",
		"--item", "item-1",
		"--conversation", "conv-a",
		"--message", "is it still available?",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sent to conversation conv-a.")
	assert.Equal(t, "is it still available?", sent["text"])
	assert.Equal(t, "user-2", sent["receiverId"])
	assert.Equal(t, "user-1", sent["senderId"])
}

func TestChatWithoutConversationStartsNewOne(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", loginHandler("recipient"))
	mux.HandleFunc("/api/messages/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `[]`)
	})
	mux.HandleFunc("/api/messages", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"_id":"m-new","conversationId":"generated","text":"hello"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	_, stderr, err := executeCLI(t, home, server.URL,
		"chat", "--to", "user-2", "--item", "item-1", "--message", "hello",
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "starting conversation ")
}

func TestAdminUsersListRequiresAdminRole(t *testing.T) {
	server := loginServer(t, "recipient")
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL, "admin", "users", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open this screen")
}

func TestAdminUserDeletePromptAborts(t *testing.T) {
	deleted := false

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", loginHandler("admin"))
	mux.HandleFunc("/api/admin/users/", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLIWithInput(t, home, server.URL, "n\n", "admin", "users", "delete", "user-9")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Aborted.")
	assert.False(t, deleted)
}

func TestNotificationsListAndMarkRead(t *testing.T) {
	var markedPath string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", loginHandler("recipient"))
	mux.HandleFunc("/api/notifications", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `[{"_id":"n1","text":"Someone messaged you","isRead":false}]`)
	})
	mux.HandleFunc("/api/notifications/", func(w http.ResponseWriter, r *http.Request) {
		markedPath = r.Method + " " + r.URL.Path
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "login", "--email", "ana@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "notifications")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Someone messaged you")
	assert.Contains(t, stdout, "unread")

	stdout, _, err = executeCLI(t, home, server.URL, "notifications", "read", "n1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Marked n1 as read.")
	assert.Equal(t, "PATCH /api/notifications/n1/read", markedPath)
}

func TestVersionPrintsVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func executeCLI(t *testing.T, home, apiURL string, args ...string) (string, string, error) {
	return executeCLIWithInput(t, home, apiURL, "", args...)
}

func executeCLIWithInput(t *testing.T, home, apiURL, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("RESX_BOOTSTRAP_DELAY", "1ns")
	if apiURL != "" {
		t.Setenv("RESX_API_URL", apiURL)
	}

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func loginHandler(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, `{"token":"token-123","user":{"_id":"user-1","fullname":"Ana Vasile","email":"ana@example.com","role":"%s"}}`, role)
	}
}

func loginServer(t *testing.T, role string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(loginHandler(role))
}

package views

import (
	"testing"
	"time"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderItemsEmpty(t *testing.T) {
	out, err := RenderItems(nil, ItemOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "items: 0")
	assert.Contains(t, out, "No items found.")
}

func TestRenderItemsNormalizesImageURLs(t *testing.T) {
	items := []domain.Item{{
		ID:       "item-1",
		Title:    "Old chair",
		Location: "Skopje",
		Images:   []string{`uploads\chair.jpg`},
	}}

	out, err := RenderItems(items, ItemOptions{BaseURL: "http://api.local:3000"})
	require.NoError(t, err)
	assert.Contains(t, out, "Old chair (item-1)")
	assert.Contains(t, out, "http://api.local:3000/uploads/chair.jpg")
}

func TestRenderInboxShowsLatestPerConversation(t *testing.T) {
	summaries := []domain.Message{
		{ID: "m2", ConversationID: "conv-a", SenderName: "Ana", Text: "see you tomorrow", CreatedAt: time.Date(2026, 3, 1, 10, 3, 0, 0, time.UTC)},
		{ID: "m3", ConversationID: "conv-b", SenderID: "u9", Text: "is it available?", CreatedAt: time.Date(2026, 3, 1, 10, 2, 0, 0, time.UTC)},
	}

	out, err := RenderInbox(summaries)
	require.NoError(t, err)
	assert.Contains(t, out, "conversations: 2")
	assert.Contains(t, out, "Ana [conv-a]")
	assert.Contains(t, out, "u9 [conv-b]")
	assert.Contains(t, out, "see you tomorrow")
}

func TestRenderInboxTruncatesLongPreviews(t *testing.T) {
	long := make([]rune, 0, 100)
	for i := 0; i < 100; i++ {
		long = append(long, 'x')
	}

	out, err := RenderInbox([]domain.Message{{ID: "m1", ConversationID: "conv-a", Text: string(long)}})
	require.NoError(t, err)
	assert.Contains(t, out, "…")
}

func TestRenderUsers(t *testing.T) {
	out, err := RenderUsers([]domain.User{{ID: "u1", FullName: "Ana Petrova", Email: "ana@example.com", Role: domain.RoleDonor}})
	require.NoError(t, err)
	assert.Contains(t, out, "Ana Petrova (u1)")
	assert.Contains(t, out, "ana@example.com")
}

func TestRenderNotificationsMarksUnread(t *testing.T) {
	out, err := RenderNotifications([]domain.Notification{
		{ID: "n1", Text: "Your item was claimed", Read: false},
		{ID: "n2", Text: "Welcome", Read: true},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "unread")
	assert.Contains(t, out, "Your item was claimed")
}

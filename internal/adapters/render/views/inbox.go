package views

import (
	"fmt"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const previewLimit = 60

// RenderInbox shows one line per conversation: the latest message, newest
// conversation first, as the aggregator produced them.
func RenderInbox(summaries []domain.Message) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Inbox"),
			s.header.Render(fmt.Sprintf("conversations: %d", len(summaries))),
		}

		if len(summaries) == 0 {
			lines = append(lines, s.empty.Render("No conversations yet."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, msg := range summaries {
			lines = append(lines, s.section.Render(renderSummary(msg, s)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func renderSummary(msg domain.Message, s styles) string {
	sender := msg.SenderName
	if sender == "" {
		sender = string(msg.SenderID)
	}

	when := "unknown time"
	if !msg.CreatedAt.IsZero() {
		when = msg.CreatedAt.Local().Format("2006-01-02 15:04")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.name.Render(fmt.Sprintf("%s [%s]", sender, msg.ConversationID)),
		s.detail.Render(preview(msg.Text)),
		s.meta.Render(when),
	)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit-1]) + "…"
}

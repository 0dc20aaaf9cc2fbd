package views

import (
	"fmt"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderUsers(users []domain.User) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Registered Users"),
			s.header.Render(fmt.Sprintf("users: %d", len(users))),
		}

		if len(users) == 0 {
			lines = append(lines, s.empty.Render("No users registered."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, user := range users {
			lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
				s.name.Render(fmt.Sprintf("%s (%s)", user.FullName, user.ID)),
				s.meta.Render(fmt.Sprintf("%s · %s", user.Email, user.Role)),
			)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderNotifications(notifications []domain.Notification) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Notifications"),
			s.header.Render(fmt.Sprintf("notifications: %d", len(notifications))),
		}

		if len(notifications) == 0 {
			lines = append(lines, s.empty.Render("No notifications."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, n := range notifications {
			marker := s.meta.Render("read")
			if !n.Read {
				marker = s.unread.Render("unread")
			}
			lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
				s.detail.Render(n.Text),
				lipgloss.JoinHorizontal(lipgloss.Top, marker, s.meta.Render(" · "+string(n.ID))),
			)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

package views

import (
	"fmt"
	"strings"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type ItemOptions struct {
	Title   string
	BaseURL string
}

// RenderItems lays out donation listings as cards, one per item, with image
// URLs already normalized for fetching.
func RenderItems(items []domain.Item, opts ItemOptions) (string, error) {
	return run(func(s styles) string {
		title := opts.Title
		if title == "" {
			title = "Donation Items"
		}

		lines := []string{
			s.title.Render(title),
			s.header.Render(fmt.Sprintf("items: %d", len(items))),
		}

		if len(items) == 0 {
			lines = append(lines, s.empty.Render("No items found."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, item := range items {
			lines = append(lines, s.section.Render(renderItem(item, opts, s)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func renderItem(item domain.Item, opts ItemOptions, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", item.Title, item.ID)),
		s.detail.Render(item.Description),
		s.meta.Render("location: " + item.Location),
	}

	if item.DonorName != "" {
		parts = append(parts, s.meta.Render("donor: "+item.DonorName))
	}

	if len(item.Images) > 0 {
		urls := make([]string, 0, len(item.Images))
		for _, ref := range item.Images {
			urls = append(urls, domain.ImageURL(opts.BaseURL, ref))
		}
		parts = append(parts, s.meta.Render("images: "+strings.Join(urls, " ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

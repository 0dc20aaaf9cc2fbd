package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avasile/resx-cli/internal/application"
	"github.com/avasile/resx-cli/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type incomingMsg struct {
	appended bool
	err      error
}

type sentMsg struct {
	err error
}

type model struct {
	ctx     context.Context
	session *application.ChatSession
	me      domain.UserID
	peer    string
	input   textinput.Model
	status  string
	done    bool

	headerStyle lipgloss.Style
	mineStyle   lipgloss.Style
	theirsStyle lipgloss.Style
	metaStyle   lipgloss.Style
	errorStyle  lipgloss.Style
}

func newModel(ctx context.Context, session *application.ChatSession, me domain.UserID, peer string) model {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Focus()
	input.CharLimit = 500

	return model{
		ctx:         ctx,
		session:     session,
		me:          me,
		peer:        peer,
		input:       input,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		mineStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		theirsStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		metaStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForMessage())
}

// waitForMessage blocks on the realtime channel; the chat session already
// filters foreign conversations and duplicate echoes.
func (m model) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		_, appended, err := m.session.Receive(m.ctx)
		return incomingMsg{appended: appended, err: err}
	}
}

func (m model) sendCurrent() (model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.input.Reset()

	return m, func() tea.Msg {
		_, err := m.session.Send(m.ctx, text)
		return sentMsg{err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.sendCurrent()
		}
	case sentMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("send failed: %v", msg.err)
		} else {
			m.status = ""
		}
		return m, nil
	case incomingMsg:
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				return m, nil
			}
			m.status = fmt.Sprintf("realtime channel: %v", msg.err)
			return m, nil
		}
		return m, m.waitForMessage()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}

	lines := []string{m.headerStyle.Render("Chat — " + m.peer)}

	for _, message := range m.session.Messages() {
		lines = append(lines, m.renderMessage(message))
	}

	if m.status != "" {
		lines = append(lines, m.errorStyle.Render(m.status))
	}
	lines = append(lines, "", m.input.View(), m.metaStyle.Render("enter to send · esc to leave"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m model) renderMessage(message domain.Message) string {
	if message.SenderID == m.me {
		return m.mineStyle.Render("you: " + message.Text)
	}

	sender := message.SenderName
	if sender == "" {
		sender = string(message.SenderID)
	}
	return m.theirsStyle.Render(sender + ": " + message.Text)
}

// Run drives the interactive chat until the user leaves. The caller owns the
// chat session and closes it afterwards.
func Run(ctx context.Context, session *application.ChatSession, me domain.UserID, peer string) error {
	p := tea.NewProgram(newModel(ctx, session, me, peer), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run chat view: %w", err)
	}
	return nil
}

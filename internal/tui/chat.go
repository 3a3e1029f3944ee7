package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
)

type chatLine struct {
	fromUser bool
	text     string
}

type chatModel struct {
	lines []chatLine
	input textinput.Model
}

func newChatModel() chatModel {
	input := textinput.New()
	input.Placeholder = "ask about careers, resumes, interviews..."
	input.CharLimit = 500
	input.Width = 50
	input.Focus()

	return chatModel{
		lines: []chatLine{{text: service.Greeting}},
		input: input,
	}
}

func (m chatModel) View() string {
	var b strings.Builder

	// Only the tail fits comfortably on one screen.
	lines := m.lines
	if len(lines) > 12 {
		lines = lines[len(lines)-12:]
	}
	for _, line := range lines {
		if line.fromUser {
			b.WriteString("You: ")
		} else {
			b.WriteString("Assistant: ")
		}
		b.WriteString(line.text)
		b.WriteString("\n")
	}

	b.WriteString("\n> [")
	b.WriteString(m.input.View())
	b.WriteString("]")

	return renderPage("CAREER ASSISTANT", b.String(), "esc: back │ enter: send")
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if reply, ok := msg.(chatReplyMsg); ok {
		m.chat.lines = append(m.chat.lines, chatLine{text: reply.reply})
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			message := strings.TrimSpace(m.chat.input.Value())
			if message == "" {
				return m, nil
			}
			m.chat.lines = append(m.chat.lines, chatLine{fromUser: true, text: message})
			m.chat.input.SetValue("")
			return m, m.cmdChatReply(message)
		}
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdChatReply(message string) tea.Cmd {
	chat := m.services.Chat
	return func() tea.Msg {
		return chatReplyMsg{reply: chat.Reply(message)}
	}
}

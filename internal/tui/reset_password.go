package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type resetModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newResetModel() resetModel {
	email := textinput.New()
	email.Placeholder = "account email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "new password (min 6 characters)"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "confirm new password"
	confirm.CharLimit = 256
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return resetModel{inputs: []textinput.Model{email, password, confirm}}
}

func (m resetModel) View() string {
	var b strings.Builder
	labels := []string{"Email        ", "New password ", "Confirm      "}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("[")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Resetting...]")
	} else {
		b.WriteString("\n[Reset password]")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("RESET PASSWORD", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m appModel) updateReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(resetDoneMsg); ok {
		m.reset.submitting = false
		if done.err != nil {
			m.showErrorf(done.err.Error())
			return m, nil
		}
		m.reset = newResetModel()
		m.reset.status = "Password updated. You can log in now."
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.reset.focus = focusNextInput(m.reset.inputs, m.reset.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.reset.focus = focusPrevInput(m.reset.inputs, m.reset.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.reset.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.reset.inputs[0].Value())
			pass := m.reset.inputs[1].Value()
			confirm := m.reset.inputs[2].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and new password are required")
				return m, nil
			}
			m.reset.submitting = true
			return m, m.cmdResetPassword(email, pass, confirm)
		}
	}

	var cmd tea.Cmd
	m.reset.inputs[m.reset.focus], cmd = m.reset.inputs[m.reset.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdResetPassword(email, password, confirm string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return resetDoneMsg{err: auth.ResetPassword(ctx, email, password, confirm)}
	}
}

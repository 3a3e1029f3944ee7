package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password (min 6 characters)"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 256
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{name, email, password, confirm}}
}

func (m registerModel) View() string {
	var b strings.Builder
	labels := []string{"Name     ", "Email    ", "Password ", "Confirm  "}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("[")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]")
	} else {
		b.WriteString("\n[Create account]")
	}

	return renderPage("REGISTER", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(authDoneMsg); ok {
		m.register.submitting = false
		if done.err != nil {
			m.showErrorf(done.err.Error())
			return m, nil
		}
		m.currentScreen = screenHome
		m.home.idx = 0
		return m, m.cmdLoadSession()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = focusNextInput(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = focusPrevInput(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			confirm := m.register.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.showErrorf("Name, email and password are required")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(name, email, pass, confirm)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdRegister(name, email, password, confirm string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		_, err := auth.Register(ctx, name, email, password, confirm)
		return authDoneMsg{err: err}
	}
}

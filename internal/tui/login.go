package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Email    [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]")
	} else {
		b.WriteString("\n[Sign in]")
	}

	return renderPage("LOG IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(authDoneMsg); ok {
		m.login.submitting = false
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
			m.login.focus = focusNextInput(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = focusPrevInput(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		_, err := auth.Login(ctx, email, password)
		return authDoneMsg{err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

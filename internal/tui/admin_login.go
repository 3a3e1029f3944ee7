package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type adminLoginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newAdminLoginModel() adminLoginModel {
	email := textinput.New()
	email.Placeholder = "admin email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "admin password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return adminLoginModel{inputs: []textinput.Model{email, password}}
}

func (m adminLoginModel) View() string {
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

	return renderPage("ADMIN LOGIN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m appModel) updateAdminLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(authDoneMsg); ok {
		m.adminLogin.submitting = false
		if done.err != nil {
			m.showErrorf(done.err.Error())
			return m, nil
		}
		m.currentScreen = screenAdmin
		m.admin = newAdminModel()
		return m, tea.Batch(m.cmdLoadSession(), m.cmdLoadAdminAll())
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.adminLogin.focus = focusNextInput(m.adminLogin.inputs, m.adminLogin.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.adminLogin.focus = focusPrevInput(m.adminLogin.inputs, m.adminLogin.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.adminLogin.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.adminLogin.inputs[0].Value())
			pass := m.adminLogin.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.adminLogin.submitting = true
			return m, m.cmdAdminLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.adminLogin.inputs[m.adminLogin.focus], cmd = m.adminLogin.inputs[m.adminLogin.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdAdminLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return authDoneMsg{err: auth.AdminLogin(ctx, email, password)}
	}
}

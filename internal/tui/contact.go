package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type contactModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newContactModel() contactModel {
	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "your email"
	email.CharLimit = 254
	email.Width = 40

	subject := textinput.New()
	subject.Placeholder = "subject (optional)"
	subject.CharLimit = 200
	subject.Width = 40

	message := textinput.New()
	message.Placeholder = "how can we help?"
	message.CharLimit = 2000
	message.Width = 40

	return contactModel{inputs: []textinput.Model{name, email, subject, message}}
}

// prefill fills the identity fields from the session so a signed-in
// user's query lands in their own mailbox.
func (m *contactModel) prefill(session models.Session) {
	if !session.LoggedIn {
		return
	}
	m.inputs[0].SetValue(session.UserName)
	m.inputs[1].SetValue(session.UserEmail)
}

func (m contactModel) View() string {
	var b strings.Builder
	labels := []string{"Name    ", "Email   ", "Subject ", "Message "}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("[")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Sending...]")
	} else {
		b.WriteString("\n[Send]")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("CONTACT US", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m appModel) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(querySubmittedMsg); ok {
		m.contact.submitting = false
		if done.err != nil {
			m.showErrorf(done.err.Error())
			return m, nil
		}
		m.contact = newContactModel()
		m.contact.prefill(m.session)
		m.contact.status = "Thanks! We will get back to you soon."
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.contact.focus = focusNextInput(m.contact.inputs, m.contact.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.contact.focus = focusPrevInput(m.contact.inputs, m.contact.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.contact.submitting {
				return m, nil
			}
			query := models.ContactQuery{
				Name:    strings.TrimSpace(m.contact.inputs[0].Value()),
				Email:   strings.TrimSpace(m.contact.inputs[1].Value()),
				Subject: strings.TrimSpace(m.contact.inputs[2].Value()),
				Message: strings.TrimSpace(m.contact.inputs[3].Value()),
			}
			if query.Name == "" || query.Email == "" || query.Message == "" {
				m.showErrorf("Name, email and message are required")
				return m, nil
			}
			m.contact.submitting = true
			return m, m.cmdSubmitQuery(query)
		}
	}

	var cmd tea.Cmd
	m.contact.inputs[m.contact.focus], cmd = m.contact.inputs[m.contact.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdSubmitQuery(query models.ContactQuery) tea.Cmd {
	ctx := m.ctx
	contact := m.services.Contact
	return func() tea.Msg {
		_, err := contact.Submit(ctx, query)
		return querySubmittedMsg{err: err}
	}
}

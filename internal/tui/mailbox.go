package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type mailboxModel struct {
	queries []models.ContactQuery
	idx     int
	loading bool
}

func newMailboxModel() mailboxModel {
	return mailboxModel{loading: true}
}

func (m mailboxModel) current() (models.ContactQuery, bool) {
	if len(m.queries) == 0 || m.idx < 0 || m.idx >= len(m.queries) {
		return models.ContactQuery{}, false
	}
	return m.queries[m.idx], true
}

func (m mailboxModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading mailbox...")
		return renderPage("MAILBOX", b.String(), "esc: back")
	}

	if len(m.queries) == 0 {
		b.WriteString("No queries yet. Use the contact form to reach us.\n")
	} else {
		for i, query := range m.queries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			subject := query.Subject
			if subject == "" {
				subject = fitText(query.Message, 30)
			}
			b.WriteString(fmt.Sprintf("%s%s [%s]\n", cursor, fitText(subject, 44), query.Status))
		}
	}

	if query, ok := m.current(); ok {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(orDash(query.Subject)))
		b.WriteString("\n")
		b.WriteString("Sent: " + formatDate(query.Timestamp) + "\n\n")
		b.WriteString(query.Message)
		b.WriteString("\n")
		if query.AdminResponse != "" {
			b.WriteString("\nResponse")
			if query.ResponseTimestamp != nil {
				b.WriteString(" (" + formatDate(*query.ResponseTimestamp) + ")")
			}
			b.WriteString(":\n")
			b.WriteString(query.AdminResponse)
			b.WriteString("\n")
		} else {
			b.WriteString("\nAwaiting a response.\n")
		}
	}

	return renderPage("MAILBOX", b.String(), "↑/↓ select │ esc: back")
}

func (m appModel) updateMailbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(mailboxLoadedMsg); ok {
		m.mailbox.loading = false
		if loaded.err != nil {
			m.showErrorf(loaded.err.Error())
			return m, nil
		}
		m.mailbox.queries = loaded.queries
		if m.mailbox.idx >= len(m.mailbox.queries) {
			m.mailbox.idx = len(m.mailbox.queries) - 1
		}
		if m.mailbox.idx < 0 {
			m.mailbox.idx = 0
		}
		// Opening the mailbox marked everything read, refresh the badge.
		return m, m.cmdLoadSession()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.mailbox.idx > 0 {
			m.mailbox.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.mailbox.idx < len(m.mailbox.queries)-1 {
			m.mailbox.idx++
		}
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdOpenMailbox() tea.Cmd {
	ctx := m.ctx
	contact := m.services.Contact
	email := m.session.UserEmail
	return func() tea.Msg {
		queries, err := contact.OpenMailbox(ctx, email)
		return mailboxLoadedMsg{queries: queries, err: err}
	}
}

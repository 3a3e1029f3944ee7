package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type homeAction int

const (
	actionJobs homeAction = iota
	actionLogin
	actionRegister
	actionReset
	actionContact
	actionChat
	actionMailbox
	actionProfile
	actionLogout
	actionAdminLogin
	actionAdmin
	actionAdminLogout
)

type homeItem struct {
	label  string
	action homeAction
}

type homeModel struct {
	greeting string
	items    []homeItem
	idx      int
}

// newHomeModel rebuilds the menu for the current session, so entries
// appear and disappear as the user signs in and out.
func newHomeModel(session models.Session, unread int) homeModel {
	var m homeModel

	if session.LoggedIn {
		m.greeting = "Signed in as " + session.UserName
		mailboxLabel := "Mailbox"
		if unread > 0 {
			mailboxLabel = fmt.Sprintf("Mailbox (%d unread)", unread)
		}
		m.items = []homeItem{
			{label: "Browse jobs", action: actionJobs},
			{label: mailboxLabel, action: actionMailbox},
			{label: "My profile", action: actionProfile},
			{label: "Contact us", action: actionContact},
			{label: "Career assistant", action: actionChat},
			{label: "Log out", action: actionLogout},
		}
	} else {
		m.greeting = "Find your next job"
		m.items = []homeItem{
			{label: "Browse jobs", action: actionJobs},
			{label: "Log in", action: actionLogin},
			{label: "Register", action: actionRegister},
			{label: "Reset password", action: actionReset},
			{label: "Contact us", action: actionContact},
			{label: "Career assistant", action: actionChat},
		}
	}

	if session.AdminLoggedIn {
		m.items = append(m.items,
			homeItem{label: "Admin dashboard", action: actionAdmin},
			homeItem{label: "Admin logout", action: actionAdminLogout},
		)
	} else {
		m.items = append(m.items, homeItem{label: "Admin login", action: actionAdminLogin})
	}

	return m
}

func (m homeModel) View() string {
	out := titleStyle.Render("KodJobs") + "\n\n" + m.greeting + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item.label + "\n"
	}
	out += "\n" + helpStyle.Render("↑/↓ move  enter select  q quit")
	return out
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loggedOutMsg); ok {
		if done.err != nil {
			m.showErrorf(done.err.Error())
			return m, nil
		}
		m.home.idx = 0
		return m, m.cmdLoadSession()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.items)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openHomeItem(m.home.items[m.home.idx].action)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) openHomeItem(action homeAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionJobs:
		m.currentScreen = screenJobs
		m.jobs = newJobsModel()
		return m, m.cmdLoadJobs(1)
	case actionLogin:
		m.currentScreen = screenLogin
		m.login = newLoginModel()
		return m, textinput.Blink
	case actionRegister:
		m.currentScreen = screenRegister
		m.register = newRegisterModel()
		return m, textinput.Blink
	case actionReset:
		m.currentScreen = screenReset
		m.reset = newResetModel()
		return m, textinput.Blink
	case actionContact:
		m.currentScreen = screenContact
		m.contact = newContactModel()
		m.contact.prefill(m.session)
		return m, textinput.Blink
	case actionChat:
		m.currentScreen = screenChat
		return m, textinput.Blink
	case actionMailbox:
		m.currentScreen = screenMailbox
		m.mailbox = newMailboxModel()
		return m, m.cmdOpenMailbox()
	case actionProfile:
		m.currentScreen = screenProfile
		m.profile = newProfileModel()
		return m, m.cmdLoadProfile()
	case actionLogout:
		return m, m.cmdLogout()
	case actionAdminLogin:
		m.currentScreen = screenAdminLogin
		m.adminLogin = newAdminLoginModel()
		return m, textinput.Blink
	case actionAdmin:
		m.currentScreen = screenAdmin
		m.admin = newAdminModel()
		return m, m.cmdLoadAdminAll()
	case actionAdminLogout:
		return m, m.cmdAdminLogout()
	}
	return m, nil
}

func (m appModel) cmdAdminLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.AdminLogout(ctx)}
	}
}

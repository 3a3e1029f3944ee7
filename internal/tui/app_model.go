package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/internal/bus"
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type screen int

const (
	screenHome screen = iota
	screenLogin
	screenRegister
	screenReset
	screenJobs
	screenContact
	screenMailbox
	screenProfile
	screenChat
	screenAdminLogin
	screenAdmin
)

type appModel struct {
	ctx      context.Context
	services *service.Services
	logger   *logger.Logger

	currentScreen screen
	session       models.Session
	unread        int

	home       homeModel
	login      loginModel
	register   registerModel
	reset      resetModel
	jobs       jobsModel
	contact    contactModel
	mailbox    mailboxModel
	profile    profileModel
	chat       chatModel
	adminLogin adminLoginModel
	admin      adminModel

	showError    bool
	errorMessage string

	showConfirm    bool
	confirmMessage string
	pendingDelete  string
}

func newAppModel(ctx context.Context, services *service.Services, logger *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		logger:        logger,
		currentScreen: screenHome,
		home:          newHomeModel(models.Session{}, 0),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		reset:         newResetModel(),
		jobs:          newJobsModel(),
		contact:       newContactModel(),
		profile:       newProfileModel(),
		chat:          newChatModel(),
		adminLogin:    newAdminLoginModel(),
		admin:         newAdminModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadSession())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorMessage = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteUser(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case sessionLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.session = msg.session
		m.unread = msg.unread
		idx := m.home.idx
		m.home = newHomeModel(m.session, m.unread)
		if idx < len(m.home.items) {
			m.home.idx = idx
		}
		return m, nil
	case storeChangedMsg:
		return m, m.onStoreChanged(msg.topic)
	case mailboxPollMsg:
		if m.currentScreen == screenMailbox {
			return m, m.cmdOpenMailbox()
		}
		if m.session.LoggedIn {
			return m, m.cmdLoadSession()
		}
		return m, nil
	case adminPollMsg:
		if m.currentScreen == screenAdmin {
			return m, m.cmdLoadAdminTab()
		}
		return m, nil
	case copiedMsg:
		m.jobs.status = "Link copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.jobs.status = ""
		m.contact.status = ""
		m.profile.status = ""
		m.admin.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenReset:
		return m.updateReset(msg)
	case screenJobs:
		return m.updateJobs(msg)
	case screenContact:
		return m.updateContact(msg)
	case screenMailbox:
		return m.updateMailbox(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenChat:
		return m.updateChat(msg)
	case screenAdminLogin:
		return m.updateAdminLogin(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHome:
		body = m.home.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenReset:
		body = m.reset.View()
	case screenJobs:
		body = m.jobs.View()
	case screenContact:
		body = m.contact.View()
	case screenMailbox:
		body = m.mailbox.View()
	case screenProfile:
		body = m.profile.View()
	case screenChat:
		body = m.chat.View()
	case screenAdminLogin:
		body = m.adminLogin.View()
	case screenAdmin:
		body = m.admin.View()
	}

	if m.showConfirm {
		body += "\n\n" + overlayBoxStyle.Render("Delete \""+m.confirmMessage+"\"?\n\ny yes    n no")
	}
	if m.showError {
		body += "\n\n" + overlayBoxStyle.Render("Error\n\n"+m.errorMessage+"\n\nenter / esc to close")
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorMessage = message
}

// onStoreChanged re-reads whatever the change notification invalidated:
// the session snapshot and unread badge on every topic, plus the data of
// the mounted screen when its collection changed.
func (m appModel) onStoreChanged(topic bus.Topic) tea.Cmd {
	cmds := []tea.Cmd{m.cmdLoadSession()}

	switch topic {
	case bus.TopicMessagesUpdated:
		if m.currentScreen == screenMailbox {
			cmds = append(cmds, m.cmdOpenMailbox())
		}
		if m.currentScreen == screenAdmin && m.admin.tab == adminTabQueries {
			cmds = append(cmds, m.cmdLoadAdminQueries())
		}
	case bus.TopicLocalStorageUpdated:
		if m.currentScreen == screenAdmin && m.admin.tab == adminTabUsers {
			cmds = append(cmds, m.cmdLoadAdminUsers())
		}
		if m.currentScreen == screenProfile {
			cmds = append(cmds, m.cmdLoadProfile())
		}
	case bus.TopicVisitorUpdated:
		if m.currentScreen == screenAdmin && m.admin.tab == adminTabStats {
			cmds = append(cmds, m.cmdLoadAdminStats())
		}
	case bus.TopicProfileUpdated:
		if m.currentScreen == screenProfile {
			cmds = append(cmds, m.cmdLoadProfile())
		}
	}

	return tea.Batch(cmds...)
}

func (m appModel) cmdLoadSession() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	contact := m.services.Contact
	return func() tea.Msg {
		session, err := auth.Session(ctx)
		if err != nil {
			return sessionLoadedMsg{err: err}
		}
		var unread int
		if session.LoggedIn {
			unread, err = contact.UnreadCount(ctx, session.UserEmail)
			if err != nil {
				return sessionLoadedMsg{err: err}
			}
		}
		return sessionLoadedMsg{session: session, unread: unread}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrevInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

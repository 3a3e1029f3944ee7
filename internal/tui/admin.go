package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type adminTab int

const (
	adminTabUsers adminTab = iota
	adminTabQueries
	adminTabStats
)

type adminModel struct {
	tab     adminTab
	loading bool
	status  string

	users   []models.User
	userIdx int

	queries  []models.ContactQuery
	queryIdx int

	stats models.VisitorStats

	responding bool
	respond    textinput.Model
}

func newAdminModel() adminModel {
	respond := textinput.New()
	respond.Placeholder = "response text"
	respond.CharLimit = 2000
	respond.Width = 50
	return adminModel{loading: true, respond: respond}
}

func (m adminModel) currentUser() (models.User, bool) {
	if len(m.users) == 0 || m.userIdx < 0 || m.userIdx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.userIdx], true
}

func (m adminModel) currentQuery() (models.ContactQuery, bool) {
	if len(m.queries) == 0 || m.queryIdx < 0 || m.queryIdx >= len(m.queries) {
		return models.ContactQuery{}, false
	}
	return m.queries[m.queryIdx], true
}

func (m adminModel) View() string {
	var b strings.Builder

	tabs := []string{"Users", "Queries", "Visitors"}
	for i, name := range tabs {
		if adminTab(i) == m.tab {
			b.WriteString(titleStyle.Render("[" + name + "]"))
		} else {
			b.WriteString(" " + name + " ")
		}
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return renderPage("ADMIN DASHBOARD", b.String(), "esc: back")
	}

	switch m.tab {
	case adminTabUsers:
		m.viewUsers(&b)
	case adminTabQueries:
		m.viewQueries(&b)
	case adminTabStats:
		m.viewStats(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	help := "tab: switch │ ↑/↓ select │ r: refresh │ esc: back"
	switch m.tab {
	case adminTabUsers:
		help = "tab: switch │ ↑/↓ select │ b: block/unblock │ d: delete │ r: refresh │ esc: back"
	case adminTabQueries:
		if m.responding {
			help = "enter: send response │ esc: cancel"
		} else {
			help = "tab: switch │ ↑/↓ select │ a: answer │ r: refresh │ esc: back"
		}
	}
	return renderPage("ADMIN DASHBOARD", b.String(), help)
}

func (m adminModel) viewUsers(b *strings.Builder) {
	if len(m.users) == 0 {
		b.WriteString("No registered users.\n")
		return
	}
	for i, user := range m.users {
		cursor := "  "
		if i == m.userIdx {
			cursor = "> "
		}
		state := ""
		if user.IsBlocked {
			state = " [blocked]"
		}
		b.WriteString(fmt.Sprintf("%s%s <%s>%s\n", cursor, fitText(user.Name, 24), user.Email, state))
	}

	if user, ok := m.currentUser(); ok {
		b.WriteString("\n")
		b.WriteString("Registered: " + formatDate(user.RegisteredAt) + "\n")
		if user.LastLogin != nil {
			b.WriteString("Last login: " + formatDate(*user.LastLogin) + "\n")
		} else {
			b.WriteString("Last login: never\n")
		}
		b.WriteString("Skills: " + orDash(user.Skills) + "\n")
	}
}

func (m adminModel) viewQueries(b *strings.Builder) {
	if len(m.queries) == 0 {
		b.WriteString("No support queries.\n")
		return
	}
	for i, query := range m.queries {
		cursor := "  "
		if i == m.queryIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s <%s> [%s]\n", cursor, fitText(orDash(query.Subject), 30), query.Email, query.Status))
	}

	if query, ok := m.currentQuery(); ok {
		b.WriteString("\n")
		b.WriteString("From: " + query.Name + " <" + query.Email + ">\n")
		b.WriteString("Sent: " + formatDate(query.Timestamp) + "\n\n")
		b.WriteString(query.Message)
		b.WriteString("\n")
		if query.AdminResponse != "" {
			b.WriteString("\nResponse: " + query.AdminResponse + "\n")
		}
	}

	if m.responding {
		b.WriteString("\nResponse: [")
		b.WriteString(m.respond.View())
		b.WriteString("]\n")
	}
}

func (m adminModel) viewStats(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("Total visits:    %d\n", m.stats.TotalVisits))
	b.WriteString(fmt.Sprintf("Unique visitors: %d\n", m.stats.UniqueVisitors))
}

func (m appModel) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adminUsersMsg:
		m.admin.loading = false
		if msg.err != nil {
			return m.adminFailed(msg.err)
		}
		m.admin.users = msg.users
		m.admin.userIdx = clampIndex(m.admin.userIdx, len(m.admin.users))
		return m, nil
	case adminQueriesMsg:
		m.admin.loading = false
		if msg.err != nil {
			return m.adminFailed(msg.err)
		}
		m.admin.queries = msg.queries
		m.admin.queryIdx = clampIndex(m.admin.queryIdx, len(m.admin.queries))
		return m, nil
	case adminStatsMsg:
		m.admin.loading = false
		if msg.err != nil {
			return m.adminFailed(msg.err)
		}
		m.admin.stats = msg.stats
		return m, nil
	case adminActionMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, m.cmdLoadAdminTab()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.admin.responding {
		switch {
		case key.Matches(keyMsg, keys.enter):
			text := strings.TrimSpace(m.admin.respond.Value())
			if text == "" {
				m.showErrorf("Response cannot be empty")
				return m, nil
			}
			query, ok := m.admin.currentQuery()
			if !ok {
				m.admin.responding = false
				return m, nil
			}
			m.admin.responding = false
			m.admin.respond.Blur()
			m.admin.respond.SetValue("")
			return m, m.cmdRespond(query.ID, text)
		case key.Matches(keyMsg, keys.esc):
			m.admin.responding = false
			m.admin.respond.Blur()
			m.admin.respond.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.admin.respond, cmd = m.admin.respond.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.nextTab):
		m.admin.tab = (m.admin.tab + 1) % 3
		return m, m.cmdLoadAdminTab()
	case key.Matches(keyMsg, keys.up):
		switch m.admin.tab {
		case adminTabUsers:
			if m.admin.userIdx > 0 {
				m.admin.userIdx--
			}
		case adminTabQueries:
			if m.admin.queryIdx > 0 {
				m.admin.queryIdx--
			}
		}
	case key.Matches(keyMsg, keys.down):
		switch m.admin.tab {
		case adminTabUsers:
			if m.admin.userIdx < len(m.admin.users)-1 {
				m.admin.userIdx++
			}
		case adminTabQueries:
			if m.admin.queryIdx < len(m.admin.queries)-1 {
				m.admin.queryIdx++
			}
		}
	case key.Matches(keyMsg, keys.block):
		if m.admin.tab != adminTabUsers {
			return m, nil
		}
		user, ok := m.admin.currentUser()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleBlock(user.Email)
	case key.Matches(keyMsg, keys.delete):
		if m.admin.tab != adminTabUsers {
			return m, nil
		}
		user, ok := m.admin.currentUser()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirmMessage = user.Email
		m.pendingDelete = user.Email
		return m, nil
	case key.Matches(keyMsg, keys.respond):
		if m.admin.tab != adminTabQueries {
			return m, nil
		}
		query, ok := m.admin.currentQuery()
		if !ok {
			return m, nil
		}
		if query.Status == models.QueryResolved {
			m.showErrorf("This query is already resolved")
			return m, nil
		}
		m.admin.responding = true
		m.admin.respond.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadAdminTab()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) adminFailed(err error) (tea.Model, tea.Cmd) {
	m.showErrorf(err.Error())
	m.currentScreen = screenHome
	return m, m.cmdLoadSession()
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m appModel) cmdLoadAdminAll() tea.Cmd {
	return tea.Batch(m.cmdLoadAdminUsers(), m.cmdLoadAdminQueries(), m.cmdLoadAdminStats())
}

func (m appModel) cmdLoadAdminTab() tea.Cmd {
	switch m.admin.tab {
	case adminTabQueries:
		return m.cmdLoadAdminQueries()
	case adminTabStats:
		return m.cmdLoadAdminStats()
	default:
		return m.cmdLoadAdminUsers()
	}
}

func (m appModel) cmdLoadAdminUsers() tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin
	return func() tea.Msg {
		users, err := admin.Users(ctx)
		return adminUsersMsg{users: users, err: err}
	}
}

func (m appModel) cmdLoadAdminQueries() tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin
	return func() tea.Msg {
		queries, err := admin.Queries(ctx)
		return adminQueriesMsg{queries: queries, err: err}
	}
}

func (m appModel) cmdLoadAdminStats() tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin
	return func() tea.Msg {
		stats, err := admin.VisitorStats(ctx)
		return adminStatsMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdToggleBlock(email string) tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin
	return func() tea.Msg {
		_, err := admin.ToggleBlock(ctx, email)
		return adminActionMsg{err: err}
	}
}

func (m appModel) cmdDeleteUser(email string) tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin
	return func() tea.Msg {
		return adminActionMsg{err: admin.DeleteUser(ctx, email)}
	}
}

func (m appModel) cmdRespond(id, text string) tea.Cmd {
	ctx := m.ctx
	admin := m.services.Admin
	return func() tea.Msg {
		return adminActionMsg{err: admin.Respond(ctx, id, text)}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/models"
)

type jobsModel struct {
	page    models.JobPage
	visible []models.Job
	idx     int
	loading bool

	searching bool
	search    textinput.Model
	term      string

	status string
}

func newJobsModel() jobsModel {
	search := textinput.New()
	search.Placeholder = "title, company or keyword"
	search.CharLimit = 100
	search.Width = 40
	return jobsModel{search: search, loading: true}
}

func (m jobsModel) current() (models.Job, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Job{}, false
	}
	return m.visible[m.idx], true
}

func (m jobsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading jobs...")
		return renderPage("JOBS", b.String(), "esc: back")
	}

	if m.page.Fallback {
		b.WriteString("Job service is unreachable, showing saved listings.\n\n")
	}

	if m.searching {
		b.WriteString("Search: [")
		b.WriteString(m.search.View())
		b.WriteString("]\n\n")
	} else if m.term != "" {
		b.WriteString("Search: ")
		b.WriteString(m.term)
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString("No jobs match.\n")
	} else {
		for i, job := range m.visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s — %s (%s)\n", cursor, fitText(job.Title, 40), fitText(job.Company, 24), job.Location))
		}
	}

	if job, ok := m.current(); ok {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(job.Title))
		b.WriteString("\n")
		b.WriteString(job.Company + " · " + job.Location)
		if job.Type != "" {
			b.WriteString(" · " + job.Type)
		}
		b.WriteString("\n")
		if job.Salary != "" {
			b.WriteString("Salary: " + job.Salary + "\n")
		}
		b.WriteString("Posted: " + formatDate(job.Updated) + "\n")
		b.WriteString(job.Snippet)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(job.Link))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nPage %d of %d", m.page.Page, m.page.TotalPages))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	help := "↑/↓ select │ ←/→ page │ /: search │ c: copy link │ r: refresh │ esc: back"
	return renderPage("JOBS", b.String(), help)
}

func (m appModel) updateJobs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(jobsLoadedMsg); ok {
		m.jobs.loading = false
		if loaded.err != nil {
			m.showErrorf(loaded.err.Error())
			return m, nil
		}
		m.jobs.page = loaded.page
		m.jobs.visible = m.services.Jobs.Filter(loaded.page, m.jobs.term)
		m.jobs.idx = 0
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.jobs.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.jobs.searching = false
			m.jobs.search.Blur()
			m.jobs.term = strings.TrimSpace(m.jobs.search.Value())
			m.jobs.visible = m.services.Jobs.Filter(m.jobs.page, m.jobs.term)
			m.jobs.idx = 0
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.jobs.searching = false
			m.jobs.search.Blur()
			m.jobs.search.SetValue("")
			m.jobs.term = ""
			m.jobs.visible = m.jobs.page.Jobs
			m.jobs.idx = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.jobs.search, cmd = m.jobs.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.jobs.idx > 0 {
			m.jobs.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.jobs.idx < len(m.jobs.visible)-1 {
			m.jobs.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.jobs.page.Page > 1 && !m.jobs.loading {
			m.jobs.loading = true
			return m, m.cmdLoadJobs(m.jobs.page.Page - 1)
		}
	case key.Matches(keyMsg, keys.right):
		if m.jobs.page.Page < m.jobs.page.TotalPages && !m.jobs.loading {
			m.jobs.loading = true
			return m, m.cmdLoadJobs(m.jobs.page.Page + 1)
		}
	case key.Matches(keyMsg, keys.search):
		m.jobs.searching = true
		m.jobs.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		job, ok := m.jobs.current()
		if !ok || job.Link == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(job.Link)
	case key.Matches(keyMsg, keys.refresh):
		if !m.jobs.loading {
			m.jobs.loading = true
			return m, m.cmdLoadJobs(m.jobs.page.Page)
		}
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdLoadJobs(page int) tea.Cmd {
	ctx := m.ctx
	jobs := m.services.Jobs
	return func() tea.Msg {
		loaded, err := jobs.Listings(ctx, page)
		return jobsLoadedMsg{page: loaded, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return jobsLoadedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
	"github.com/Supreeth450/KodjobsSupreeth/models"
)

const (
	profileFieldName = iota
	profileFieldBio
	profileFieldSkills
	profileFieldInstitute
	profileFieldCGPA
	profileFieldYear
	profileFieldPUCollege
	profileFieldPUPercent
)

type profileModel struct {
	inputs     []textinput.Model
	focus      int
	loading    bool
	submitting bool
	status     string

	email        string
	registeredAt string
}

func newProfileModel() profileModel {
	placeholders := []string{
		"full name",
		"short bio",
		"skills, comma separated",
		"institute name",
		"CGPA",
		"year of passing",
		"PU college name",
		"PU percentage",
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 200
		input.Width = 40
		inputs[i] = input
	}
	inputs[profileFieldName].Focus()

	return profileModel{inputs: inputs, loading: true}
}

func (m *profileModel) fill(user models.User) {
	m.inputs[profileFieldName].SetValue(user.Name)
	m.inputs[profileFieldBio].SetValue(user.Bio)
	m.inputs[profileFieldSkills].SetValue(user.Skills)
	if user.AcademicDetails != nil {
		m.inputs[profileFieldInstitute].SetValue(user.AcademicDetails.InstituteName)
		m.inputs[profileFieldCGPA].SetValue(user.AcademicDetails.CGPA)
		m.inputs[profileFieldYear].SetValue(user.AcademicDetails.YearOfPassing)
		m.inputs[profileFieldPUCollege].SetValue(user.AcademicDetails.PUCollegeName)
		m.inputs[profileFieldPUPercent].SetValue(user.AcademicDetails.PUPercentage)
	}
	m.email = user.Email
	m.registeredAt = formatDate(user.RegisteredAt)
}

func (m profileModel) toUpdate() service.ProfileUpdate {
	return service.ProfileUpdate{
		Name:   strings.TrimSpace(m.inputs[profileFieldName].Value()),
		Bio:    strings.TrimSpace(m.inputs[profileFieldBio].Value()),
		Skills: strings.TrimSpace(m.inputs[profileFieldSkills].Value()),
		AcademicDetails: &models.AcademicDetails{
			InstituteName: strings.TrimSpace(m.inputs[profileFieldInstitute].Value()),
			CGPA:          strings.TrimSpace(m.inputs[profileFieldCGPA].Value()),
			YearOfPassing: strings.TrimSpace(m.inputs[profileFieldYear].Value()),
			PUCollegeName: strings.TrimSpace(m.inputs[profileFieldPUCollege].Value()),
			PUPercentage:  strings.TrimSpace(m.inputs[profileFieldPUPercent].Value()),
		},
	}
}

func (m profileModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading profile...")
		return renderPage("MY PROFILE", b.String(), "esc: back")
	}

	b.WriteString("Email: " + m.email + "\n")
	b.WriteString("Member since: " + m.registeredAt + "\n\n")

	labels := []string{
		"Name       ",
		"Bio        ",
		"Skills     ",
		"Institute  ",
		"CGPA       ",
		"Year       ",
		"PU college ",
		"PU percent ",
	}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("[")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]")
	} else {
		b.WriteString("\n[Save]")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("MY PROFILE", b.String(), "esc: back │ tab: next field │ enter: save")
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.profile.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenHome
			return m, nil
		}
		m.profile.fill(msg.user)
		return m, nil
	case profileSavedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.profile.fill(msg.user)
		m.profile.status = "Profile saved."
		return m, tea.Batch(m.cmdLoadSession(), cmdClearStatus())
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.profile.focus = focusNextInput(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.focus = focusPrevInput(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.profile.submitting || m.profile.loading {
				return m, nil
			}
			update := m.profile.toUpdate()
			if update.Name == "" {
				m.showErrorf("Name cannot be empty")
				return m, nil
			}
			m.profile.submitting = true
			return m, m.cmdSaveProfile(update)
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile
	return func() tea.Msg {
		user, err := profile.Load(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m appModel) cmdSaveProfile(update service.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	profile := m.services.Profile
	return func() tea.Msg {
		user, err := profile.Update(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

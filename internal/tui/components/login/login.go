package login

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	apperrors "github.com/julianstephens/onetake/internal/errors"
	"github.com/julianstephens/onetake/internal/logger"
	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/session"
	"github.com/julianstephens/onetake/internal/theme"
)

// ResultMsg carries the outcome of an asynchronous login.
type ResultMsg struct {
	Err error
}

// fields is shared with the huh form, which writes through the pointers.
type fields struct {
	Email    string
	Password string
}

type Model struct {
	session *session.Store
	themes  *theme.Store

	state   State
	fields  *fields
	form    *huh.Form
	mode    theme.Mode
	spinner spinner.Model
	width   int
	height  int
}

func New(sess *session.Store, themes *theme.Store) Model {
	m := Model{
		session: sess,
		themes:  themes,
		fields:  &fields{},
		mode:    themes.Mode(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.form = m.newForm()
	return m
}

func (m Model) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("Email").
				Value(&m.fields.Email),
			huh.NewInput().
				Title("Senha").
				Placeholder("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&m.fields.Password),
		),
	).
		WithShowHelp(false).
		WithTheme(formTheme(m.mode))
}

func formTheme(mode theme.Mode) *huh.Theme {
	if mode == theme.Light {
		return huh.ThemeBase()
	}
	return huh.ThemeDracula()
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// State exposes the view-model for inspection.
func (m Model) State() State {
	return m.state
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.form.WithWidth(min(width, 60))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if mode := m.themes.Mode(); mode != m.mode {
		m.mode = mode
		m.form = m.form.WithTheme(formTheme(mode))
	}

	switch msg := msg.(type) {
	case ResultMsg:
		return m.resolve(msg.Err)
	case spinner.TickMsg:
		if !m.state.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// the form is frozen while an attempt is in flight
	if m.state.Submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		next, submitCmd := m.submit()
		return next, tea.Batch(cmd, submitCmd)
	case huh.StateAborted:
		// nothing to go back to from login; start the form over
		m.form = m.newForm()
		return m, m.form.Init()
	}
	return m, cmd
}

// submit starts a login with the current field values. It is a no-op while
// another attempt is in flight.
func (m Model) submit() (Model, tea.Cmd) {
	next, ok := m.state.Submit(m.fields.Email, m.fields.Password)
	if !ok {
		return m, nil
	}
	m.state = next
	return m, tea.Batch(loginCmd(m.session, next.Email, next.Password), m.spinner.Tick)
}

func loginCmd(sess *session.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.LoginTimeout)
		defer cancel()
		return ResultMsg{Err: sess.Login(ctx, email, password)}
	}
}

func (m Model) resolve(err error) (Model, tea.Cmd) {
	if !m.state.Submitting {
		return m, nil
	}
	m.state = m.state.Resolve(err)
	if err != nil {
		logger.Debug("login form kept for retry", "email", m.state.Email)
		// rebuild over the same fields so the typed values survive
		m.form = m.newForm()
		if m.width > 0 {
			m.form = m.form.WithWidth(min(m.width, 60))
		}
		return m, m.form.Init()
	}
	return m, nav.ReplaceWith(nav.Dashboard)
}

func (m Model) View() string {
	st := theme.NewStyles(m.themes.Tokens())

	header := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render(constants.WelcomeText),
		st.Muted.Render(constants.SubtitleText),
	)

	var footer string
	switch {
	case m.state.Submitting:
		sp := m.spinner
		sp.Style = st.Accent
		footer = sp.View() + " " + st.ButtonOff.Render(constants.LoggingIn)
	default:
		footer = st.Button.Render(constants.LoginButton)
	}

	parts := []string{header, "", m.form.View(), footer}
	if m.state.Err != nil {
		parts = append(parts, "", st.Error.Render(apperrors.Message(m.state.Err)))
	}
	parts = append(parts, "", st.Accent.Render(constants.ForgotPassword))

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

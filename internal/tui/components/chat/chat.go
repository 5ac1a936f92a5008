package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/logger"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/storage"
	"github.com/julianstephens/onetake/internal/theme"
	"github.com/julianstephens/onetake/internal/tui/components/loading"
)

type loadedMsg struct {
	// owner is the id of the Model whose fetch produced the message
	owner     string
	team      []models.Message
	assistant []models.Message
	err       error
}

type KeyMap struct {
	SwitchMode key.Binding
	Send       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch chat"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// Rows taken by the mode selector above the thread and the input box below it.
const (
	selectorHeight = 1
	inputHeight    = 3
)

type Model struct {
	provider storage.Provider
	themes   *theme.Store
	keys     KeyMap
	now      func() time.Time
	newID    func() string
	id       string

	load     loading.Model
	state    State
	input    textinput.Model
	viewport viewport.Model
	// rendered identifies the thread content last laid out, so the view
	// follows the newest message whenever it changes
	rendered string
	width    int
	height   int
}

func New(provider storage.Provider, themes *theme.Store) Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = constants.TeamPlaceholder
	ti.Focus()

	return Model{
		provider: provider,
		themes:   themes,
		keys:     DefaultKeyMap(),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		id:       uuid.New().String(),
		load:     loading.New(),
		state:    NewState(nil, nil),
		input:    ti,
		viewport: viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load.Start(), m.fetch(), textinput.Blink)
}

func (m Model) fetch() tea.Cmd {
	p, owner := m.provider, m.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.LoadTimeout)
		defer cancel()

		msg := loadedMsg{owner: owner}
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			thread, err := p.GetThread(ctx, models.ChatModeTeam)
			if err != nil {
				return fmt.Errorf("load team thread: %w", err)
			}
			msg.team = thread
			return nil
		})
		g.Go(func() error {
			thread, err := p.GetThread(ctx, models.ChatModeAssistant)
			if err != nil {
				return fmt.Errorf("load assistant thread: %w", err)
			}
			msg.assistant = thread
			return nil
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.SwitchMode, m.keys.Send, m.keys.ScrollUp, m.keys.ScrollDown}
}

func (m Model) State() State {
	return m.state
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(0, height-selectorHeight-inputHeight)
	m.input.Width = max(0, width-6)
	m.follow()
}

// follow re-lays out the active thread and jumps to the newest message
// if the layout changed.
func (m *Model) follow() {
	st := theme.NewStyles(m.themes.Tokens())
	content := RenderThread(m.state.Thread(), m.state.Mode, st, m.viewport.Width)
	layout := fmt.Sprintf("%s/%d/%d", m.state.Mode, lipgloss.Height(content), m.viewport.Height)
	m.viewport.SetContent(content)
	if layout != m.rendered {
		m.rendered = layout
		m.viewport.GotoBottom()
	}
}

func (m Model) placeholder() string {
	if m.state.Mode == models.ChatModeAssistant {
		return constants.AssistantPlaceholder
	}
	return constants.TeamPlaceholder
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		// a fetch from an earlier visit, or a duplicate after the threads loaded
		if msg.owner != m.id || m.load.Ready() {
			return m, nil
		}
		m.load.Done(msg.err)
		if msg.err != nil {
			logger.Error("chat load failed", "err", msg.err)
			return m, nil
		}
		// keep anything sent while the threads were loading
		state := NewState(msg.team, msg.assistant)
		for mode, thread := range m.state.Threads {
			state.Threads[mode] = append(state.Threads[mode], thread...)
		}
		state.Mode = m.state.Mode
		state.Draft = m.state.Draft
		m.state = state
		m.follow()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.SwitchMode):
			next := models.ChatModeAssistant
			if m.state.Mode == models.ChatModeAssistant {
				next = models.ChatModeTeam
			}
			m.state = m.state.SelectMode(next)
			m.input.Placeholder = m.placeholder()
			m.follow()
			return m, nil

		case key.Matches(msg, m.keys.Send):
			next, sent, ok := m.state.Send(m.newID(), m.now())
			if !ok {
				return m, nil
			}
			m.state = next
			m.input.SetValue(next.Draft)
			logger.Info("chat message sent", "mode", next.Mode, "id", sent.ID)
			m.follow()
			return m, nil

		case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case m.load.Status == loading.Failed:
			var retry bool
			m.load, _, retry = m.load.Update(msg)
			if retry {
				return m, tea.Batch(m.load.Start(), m.fetch())
			}
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.state = m.state.ChangeDraft(m.input.Value())
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.load, cmd, _ = m.load.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	st := theme.NewStyles(m.themes.Tokens())

	var thread string
	if m.load.Ready() {
		vp := m.viewport
		vp.SetContent(RenderThread(m.state.Thread(), m.state.Mode, st, vp.Width))
		thread = vp.View()
	} else {
		thread = m.load.View(st, m.width, m.viewport.Height)
	}

	input := m.input
	input.PromptStyle = st.Accent
	input.TextStyle = st.Text
	input.PlaceholderStyle = st.Muted
	box := st.Card.Width(max(0, m.width-2)).Render(input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		ModeSelector(m.state.Mode, st),
		thread,
		box,
	)
}

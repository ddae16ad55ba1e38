// Package live runs a quiz session as an interactive Bubble Tea program.
package live

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizzer/internal/question"
	"quizzer/internal/session"
	"quizzer/internal/ui/textview"
	"quizzer/internal/view/dom"
)

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

type screen struct {
	phase session.Phase
	index int
}

// Model renders a quiz session and maps keys onto its controls.
type Model struct {
	session  *session.Session
	root     *dom.Element
	keys     keyMap
	help     help.Model
	input    textinput.Model
	controls []textview.Control
	focus    int
	screen   screen
	noColor  bool
	quitting bool
}

// NewModel mounts s and returns a model focused on its first control.
func NewModel(s *session.Session, opts Options) Model {
	root := dom.NewRoot("div")
	s.Render(root)
	input := textinput.New()
	input.Placeholder = question.InputPlaceholder
	input.Prompt = "> "
	m := Model{
		session: s,
		root:    root,
		keys:    defaultKeys(),
		help:    help.New(),
		input:   input,
		noColor: opts.NoColor,
		screen:  screen{phase: s.Phase(), index: s.Index()},
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update maps keys onto the focused control.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		m.input.Width = max(typed.Width-8, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	editing := m.editing()
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case editing && typingKeys(msg.String()):
		return m.typeInto(msg)
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.move(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.move(-1)
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		m.activate()
		return m, nil
	case editing:
		return m.typeInto(msg)
	}
	return m, nil
}

// typeInto forwards a key to the text field and mirrors its value into the
// focused input element.
func (m Model) typeInto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if el := m.focused(); el != nil && el.Value() != m.input.Value() {
		el.Input(m.input.Value())
		m.sync()
	}
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.controls) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.controls)) % len(m.controls)
	m.input.Blur()
	m.sync()
}

// activate clicks the focused button. On a text field it submits by clicking
// the next button and then focuses the trailing navigation control.
func (m *Model) activate() {
	if len(m.controls) == 0 {
		return
	}
	control := m.controls[m.focus]
	if control.Kind == textview.ControlInput {
		for _, next := range m.controls[m.focus+1:] {
			if next.Kind == textview.ControlButton {
				next.Element.Click()
				m.input.Blur()
				m.focus = len(m.controls)
				m.sync()
				return
			}
		}
		return
	}
	control.Element.Click()
	m.sync()
}

// sync refreshes the control list after the tree was re-mounted.
func (m *Model) sync() {
	current := screen{phase: m.session.Phase(), index: m.session.Index()}
	if current != m.screen {
		m.screen = current
		m.focus = 0
		m.input.Blur()
	}
	m.controls = textview.Controls(m.root)
	if m.focus >= len(m.controls) {
		m.focus = max(len(m.controls)-1, 0)
	}
	el := m.focused()
	if el == nil || el.Tag() != "input" {
		m.input.Blur()
		return
	}
	if !m.input.Focused() {
		m.input.SetValue(el.Value())
		m.input.CursorEnd()
		m.input.Focus()
	}
}

func (m Model) focused() *dom.Element {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return nil
	}
	return m.controls[m.focus].Element
}

func (m Model) editing() bool {
	return m.input.Focused()
}

// Session returns the driven session.
func (m Model) Session() *session.Session {
	return m.session
}

// View renders the session and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	focused := m.focused()
	body := textview.Render(m.root, textview.Options{
		NoColor: m.noColor,
		Focus:   focused,
		InputView: func(el *dom.Element) (string, bool) {
			if el != focused || !m.input.Focused() {
				return "", false
			}
			return m.input.View(), true
		},
	})
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))
}

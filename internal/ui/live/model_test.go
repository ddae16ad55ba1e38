package live

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quizzer/internal/session"
	"quizzer/internal/shuffle"
)

func newSession(t *testing.T, payload string) *session.Session {
	t.Helper()
	var raw any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	s := session.New(raw, session.Options{Rand: shuffle.New(3)})
	if !s.Valid() {
		t.Fatalf("invalid payload: %v", s.Errors())
	}
	return s
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestModelTrueFalseFlow(t *testing.T) {
	s := newSession(t, `{"title":"T","data":[{"type":"tf","question":"Q","answer":{"label":true}}]}`)
	m := NewModel(s, Options{NoColor: true})
	if !strings.Contains(m.View(), "› [ ▶ Start Quiz ]") {
		t.Fatalf("expected focused start button:\n%s", m.View())
	}

	m = press(t, m, enter)
	if s.Phase() != session.PhaseInProgress {
		t.Fatalf("expected quiz in progress, got %v", s.Phase())
	}
	m = press(t, m, enter)
	if !strings.Contains(m.View(), "(•) True") {
		t.Fatalf("expected True selected:\n%s", m.View())
	}
	m = press(t, m, tab, tab, enter)
	if !strings.Contains(m.View(), "Correct!") {
		t.Fatalf("expected feedback after submit:\n%s", m.View())
	}
	m = press(t, m, enter)
	if s.Phase() != session.PhaseFinished {
		t.Fatalf("expected finished, got %v", s.Phase())
	}
	if !strings.Contains(m.View(), "100%") {
		t.Fatalf("expected results:\n%s", m.View())
	}
	m = press(t, m, enter)
	if s.Phase() != session.PhaseStartMenu {
		t.Fatalf("expected start menu after reset, got %v", s.Phase())
	}
}

func TestModelShortAnswerTyping(t *testing.T) {
	s := newSession(t, `{"title":"T","data":[{"type":"sa","question":"Q","answer":"jqk"}]}`)
	m := NewModel(s, Options{NoColor: true})
	m = press(t, m, enter)
	if !m.editing() {
		t.Fatalf("expected the answer field to take focus")
	}
	m = typeText(t, m, "jqk")
	if s.Phase() != session.PhaseInProgress {
		t.Fatalf("expected typing q not to quit")
	}
	m = press(t, m, enter)
	if !strings.Contains(m.View(), "Correct!") {
		t.Fatalf("expected correct feedback:\n%s", m.View())
	}
	m = press(t, m, enter)
	if got := s.Correctness(); len(got) != 1 || !got[0] {
		t.Fatalf("unexpected correctness %v", got)
	}
}

func TestModelQuit(t *testing.T) {
	s := newSession(t, `{"title":"T","data":[{"type":"tf","question":"Q","answer":{"label":true}}]}`)
	m := NewModel(s, Options{NoColor: true})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

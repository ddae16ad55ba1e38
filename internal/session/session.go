// Package session drives one quiz from its start menu through every question
// to the results screen and back.
package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/results"
	"quizzer/internal/schema"
	"quizzer/internal/shuffle"
	"quizzer/internal/view"
)

// Phase is the controller state.
type Phase int

// Phases run StartMenu, InProgress, Finished and back to StartMenu on reset.
const (
	PhaseStartMenu Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseStartMenu:
		return "start-menu"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Options configures a session. Zero values pick a random seed and discard
// logs.
type Options struct {
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Session owns the evaluators of one quiz and the correctness log. It is not
// safe for concurrent use; drive it from a single UI loop.
type Session struct {
	id          string
	logger      *slog.Logger
	rng         *rand.Rand
	quiz        quiz.Quiz
	errors      []schema.ValidationError
	evaluators  []question.Evaluator
	phase       Phase
	index       int
	correctness []bool
	mounted     view.Element
}

// New validates raw and builds a session from it. An invalid payload yields a
// session that only renders its error report.
func New(raw any, opts Options) *Session {
	s := newSession(opts)
	report := schema.Validate(raw)
	if !report.Valid() {
		s.errors = report.Errors
		s.logger.Warn("quiz payload rejected", "errors", len(report.Errors))
		return s
	}
	decoded, err := quiz.DecodeValue(raw)
	if err != nil {
		s.errors = []schema.ValidationError{{Message: err.Error()}}
		s.logger.Warn("quiz payload could not be decoded", "error", err)
		return s
	}
	s.build(decoded)
	return s
}

// FromQuiz builds a session from an already decoded quiz. Records of unknown
// kinds are dropped; a quiz left without questions is reported as an error.
func FromQuiz(q quiz.Quiz, opts Options) *Session {
	s := newSession(opts)
	s.build(q)
	return s
}

func newSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := opts.Rand
	if rng == nil {
		rng = shuffle.New(0)
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		logger: logger.With("session", id),
		rng:    rng,
	}
}

func (s *Session) build(q quiz.Quiz) {
	s.quiz = q
	s.evaluators = s.evaluators[:0]
	for i, record := range q.Data {
		ev, ok := question.New(record, s.rng)
		if !ok {
			s.logger.Debug("skipping unsupported question", "index", i, "kind", record.Kind())
			continue
		}
		s.evaluators = append(s.evaluators, ev)
	}
	if len(s.evaluators) == 0 {
		s.errors = []schema.ValidationError{{Path: "data", Message: "contains no supported questions"}}
		return
	}
	shuffle.Slice(s.rng, s.evaluators)
	s.logger.Debug("quiz ready", "title", q.Title, "questions", len(s.evaluators))
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Quiz returns the decoded quiz.
func (s *Session) Quiz() quiz.Quiz { return s.quiz }

// Valid reports whether the session has questions to ask.
func (s *Session) Valid() bool { return len(s.errors) == 0 }

// Errors returns the validation errors that block the quiz.
func (s *Session) Errors() []schema.ValidationError {
	return append([]schema.ValidationError(nil), s.errors...)
}

// Phase returns the current state.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the position of the active question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.evaluators) }

// Correctness returns a copy of the verdict log.
func (s *Session) Correctness() []bool {
	return append([]bool(nil), s.correctness...)
}

// Summary summarizes the verdict log.
func (s *Session) Summary() results.Summary {
	return results.Summarize(s.correctness)
}

// Current returns the active evaluator while a quiz is in progress.
func (s *Session) Current() (question.Evaluator, bool) {
	if s.phase != PhaseInProgress || s.index >= len(s.evaluators) {
		return nil, false
	}
	return s.evaluators[s.index], true
}

// Start leaves the start menu.
func (s *Session) Start() bool {
	if !s.Valid() || s.phase != PhaseStartMenu {
		return false
	}
	s.phase = PhaseInProgress
	s.index = 0
	s.correctness = s.correctness[:0]
	s.logger.Info("quiz started", "questions", len(s.evaluators))
	return true
}

// Reset returns a finished quiz to the start menu with a fresh question order
// and cleared evaluators.
func (s *Session) Reset() bool {
	if s.phase != PhaseFinished {
		return false
	}
	shuffle.Slice(s.rng, s.evaluators)
	for _, ev := range s.evaluators {
		ev.Reset()
	}
	s.correctness = s.correctness[:0]
	s.index = 0
	s.phase = PhaseStartMenu
	s.logger.Debug("quiz reset")
	return true
}

// progressFor returns the callback for the question at index. Only the first
// call while that question is active advances the quiz.
func (s *Session) progressFor(index int) question.ProgressFunc {
	return func(correct bool) {
		if s.phase != PhaseInProgress || s.index != index {
			s.logger.Debug("ignoring stale progress", "index", index)
			return
		}
		s.correctness = append(s.correctness, correct)
		s.index++
		s.logger.Debug("question answered", "index", index, "correct", correct)
		if s.index == len(s.evaluators) {
			s.phase = PhaseFinished
			summary := s.Summary()
			s.logger.Info("quiz finished", "correct", summary.Correct, "total", summary.Total)
		}
	}
}

// Dispatch applies a UI action and re-renders the mounted element when the
// state changed.
func (s *Session) Dispatch(action view.Action) {
	if s.apply(action) && s.mounted != nil {
		view.Mount(s.mounted, s.View(), s)
	}
}

func (s *Session) apply(action view.Action) bool {
	switch action.Kind {
	case view.ActionStart:
		return s.Start()
	case view.ActionReset:
		return s.Reset()
	}
	ev, ok := s.Current()
	if !ok {
		return false
	}
	before := s.index
	changed := ev.Handle(action, s.progressFor(s.index))
	return changed || s.index != before
}

// Render mounts the session view into element and keeps it current on every
// dispatched action.
func (s *Session) Render(element view.Element) {
	s.mounted = element
	view.Mount(element, s.View(), s)
}

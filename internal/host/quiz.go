package host

import (
	"encoding/json"
	"log/slog"

	"quizzer/internal/session"
	"quizzer/internal/view"
)

// InvalidJSONMessage replaces a quiz block whose source is not JSON.
const InvalidJSONMessage = "Invalid JSON format provided"

// QuizOptions configures the quiz processor.
type QuizOptions struct {
	Session session.Options
	// Started receives every session the processor mounts.
	Started func(*session.Session)
}

// QuizProcessor parses a quiz block and mounts a session for it. Malformed
// JSON renders an inline message and builds no session.
func QuizProcessor(opts QuizOptions) Processor {
	logger := opts.Session.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(source string, el view.Element) {
		var raw any
		if err := json.Unmarshal([]byte(source), &raw); err != nil {
			logger.Warn("quiz block is not valid JSON", "error", err)
			view.Mount(el, []view.Node{view.TextBlock("", InvalidJSONMessage)}, nil)
			return
		}
		s := session.New(raw, opts.Session)
		s.Render(el)
		if opts.Started != nil {
			opts.Started(s)
		}
	}
}

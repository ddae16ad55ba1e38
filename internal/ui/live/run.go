package live

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizzer/internal/session"
)

// Run drives s until the user quits or ctx is cancelled.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer, opts Options) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	program := tea.NewProgram(NewModel(s, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

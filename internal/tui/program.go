package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

var _ tea.Model = (*Model)(nil)

// NewProgram creates the Bubble Tea program for cfg on the alternate screen.
func NewProgram(cfg Config, opts ...tea.ProgramOption) (*tea.Program, error) {
	if cfg.Screen == nil {
		return nil, errors.New("tui needs a screen")
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(NewModel(cfg), opts...), nil
}

package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NicoEre03/habit-tracker/internal/engine"
)

// RunGrid opens the interactive grid view.
func RunGrid(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newGridModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NicoEre03/habit-tracker/internal/engine"
	"github.com/NicoEre03/habit-tracker/internal/storage"
	"github.com/NicoEre03/habit-tracker/internal/ui"
)

// visibleCols caps how many trailing date columns the view renders.
const visibleCols = 14

type gridModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	grid *engine.Grid
	row  int
	col  int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	grid *engine.Grid
	err  error
}

type wroteMsg struct {
	err error
}

func newGridModel(ctx context.Context, svc *engine.Service) gridModel {
	return gridModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loading…",
	}
}

func (m gridModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m gridModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		grid, err := m.svc.ReadGrid(m.ctx, time.Now().UTC())
		return loadedMsg{grid: grid, err: err}
	}
}

func (m gridModel) toggleCmd(habit string, date string, value int) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.UpdateCell(m.ctx, habit, date, &value, nil, time.Now().UTC())
		return wroteMsg{err: err}
	}
}

func (m gridModel) snapshotCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.svc.RecordSnapshot(m.ctx, time.Now().UTC())
		return wroteMsg{err: err}
	}
}

// nextValue cycles a cell through the user-loggable states. Engine-assigned
// failures and excuses cycle back into an explicit completion.
func nextValue(v int) int {
	switch v {
	case storage.ValueNeutral:
		return storage.ValueDone
	case storage.ValueDone:
		return storage.ValueDoneAlt
	case storage.ValueDoneAlt:
		return storage.ValueNeutral
	default:
		return storage.ValueDone
	}
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.grid = msg.grid
		m.clampCursor()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case wroteMsg:
		if msg.err != nil {
			m.lastLog = "Write failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "s":
			m.lastLog = "Recording snapshot…"
			return m, m.snapshotCmd()
		case "up", "k":
			m.row--
			m.clampCursor()
			return m, nil
		case "down", "j":
			m.row++
			m.clampCursor()
			return m, nil
		case "left", "h":
			m.col--
			m.clampCursor()
			return m, nil
		case "right", "l":
			m.col++
			m.clampCursor()
			return m, nil
		case " ", "enter":
			if m.grid == nil || len(m.grid.Rows) == 0 {
				return m, nil
			}
			row := m.grid.Rows[m.row]
			date := m.grid.Dates[m.col]
			next := nextValue(row.Cells[m.col].Val)
			m.lastLog = fmt.Sprintf("Logging %s @ %s…", row.Name, date)
			return m, m.toggleCmd(row.Name, date, next)
		}
	}
	return m, nil
}

func (m *gridModel) clampCursor() {
	if m.grid == nil {
		m.row, m.col = 0, 0
		return
	}
	if m.row >= len(m.grid.Rows) {
		m.row = len(m.grid.Rows) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if m.col >= len(m.grid.Dates) {
		m.col = len(m.grid.Dates) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
}

func (m gridModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.grid == nil {
		return "Habit grid — loading…\n"
	}

	var b strings.Builder
	b.WriteString(ui.Title.Render("Habit Grid"))
	b.WriteString("\n\n")

	first := 0
	if len(m.grid.Dates) > visibleCols {
		first = len(m.grid.Dates) - visibleCols
	}
	if m.col < first {
		first = m.col
	}

	nameW := 4
	for _, r := range m.grid.Rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
	}

	// Header: day-of-month per visible column.
	b.WriteString(padRight("", nameW+6))
	for c := first; c < len(m.grid.Dates); c++ {
		day := m.grid.Dates[c]
		if len(day) >= 10 {
			day = day[8:10]
		}
		b.WriteString(" " + ui.Muted.Render(padRight(day, 2)))
	}
	b.WriteString("\n")

	for ri, r := range m.grid.Rows {
		b.WriteString(padRight(r.Name, nameW))
		b.WriteString(" " + ui.Muted.Render(padRight(r.Periodicity, 4)))
		for c := first; c < len(m.grid.Dates); c++ {
			glyph := ui.ValueGlyph(r.Cells[c].Val)
			if r.Cells[c].Note != "" && glyph == " " {
				glyph = "'"
			}
			cell := ui.ValueStyle(r.Cells[c].Val).Render(glyph)
			if ri == m.row && c == m.col {
				cell = ui.SelectedCell.Render(glyph)
			}
			b.WriteString(" " + cell + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("←↓↑→/hjkl move · space log · s snapshot · r refresh · q quit"))
	b.WriteString("\n" + m.lastLog + "\n")
	return b.String()
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

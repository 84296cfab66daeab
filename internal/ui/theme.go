package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

// Shared theme for CLI output and the TUI grid.

const (
	IconGrid     = "🗓️"
	IconDone     = "✅"
	IconSnapshot = "📸"
	IconInfo     = "ℹ️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedCell = lipgloss.NewStyle().Bold(true).Background(cPrimary)
)

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ValueGlyph renders one grid cell status as a fixed-width glyph.
func ValueGlyph(v int) string {
	switch v {
	case storage.ValueDone:
		return "✓"
	case storage.ValueDoneAlt:
		return "★"
	case storage.ValueFailed:
		return "✗"
	case storage.ValueExcused:
		return "·"
	default:
		return " "
	}
}

// ValueStyle returns the style matching a cell status.
func ValueStyle(v int) lipgloss.Style {
	switch v {
	case storage.ValueDone, storage.ValueDoneAlt:
		return Good
	case storage.ValueFailed:
		return Bad
	default:
		return Muted
	}
}

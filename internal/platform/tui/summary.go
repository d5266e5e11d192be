package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// RunRecord summarises one run of a headless simulation.
type RunRecord struct {
	Run      int
	Ticks    int // Ticks until the run stopped or the simulation ended
	Score    int
	Recycles int
	Stopped  bool
}

// RenderRuns formats run records as a table.
func RenderRuns(runs []RunRecord) string {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Ticks", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Recycles", Width: 9},
		{Title: "Result", Width: 10},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "running"
		if r.Stopped {
			result = "game over"
		}
		rows[i] = table.Row{
			"#" + strconv.Itoa(r.Run),
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Recycles),
			result,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is selected in a static report.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

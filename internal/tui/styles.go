package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorFailure)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

var (
	colorSuccess    = lipgloss.Color("2") // green
	colorInProgress = lipgloss.Color("3") // yellow
	colorFailure    = lipgloss.Color("1") // red
	colorNeutral    = lipgloss.Color("7") // white
)

// statusColor maps a deploy/job status to its display color,
// case-insensitively. Unknown statuses stay neutral.
func statusColor(status string) lipgloss.Color {
	switch strings.ToLower(status) {
	case "live", "succeeded", "success":
		return colorSuccess
	case "building", "deploying", "running":
		return colorInProgress
	case "build_failed", "failed", "canceled":
		return colorFailure
	default:
		return colorNeutral
	}
}

// StatusStyle returns the style for rendering a status cell.
func StatusStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(statusColor(status))
}
